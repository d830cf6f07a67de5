package untappdweb

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/model"
)

type BeerJSON struct {
	Description string `json:"description"`
	Image       struct {
		ContentURL string `json:"contentUrl"`
	} `json:"image"`
	Sku             uint64 `json:"sku"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
	} `json:"aggregateRating"`
}

type BeerScraped struct {
	IDLink        string `attr:"href"          selector:"a.label"`
	Name          string `selector:".name > a"`
	BreweryIDLink string `attr:"href"          selector:".brewery > a"`
	BreweryName   string `selector:".brewery > a"`
	Style         string `selector:".style"`
	ABV           string `selector:".abv"`
	IBU           string `selector:".ibu"`
}

type BeerContent struct {
	Description string `selector:".beer-descrption-read-more"`
	ImageURL    string `attr:"src"                            selector:"a.label > img"`
	Rating      string `selector:".details .num"`
}

type scrapeResult struct {
	candidate model.BeerCandidate
	err       error
}

func (u *UntappedWebIntegration) newCollector(ctx context.Context) *colly.Collector {
	collector := colly.NewCollector(
		colly.AllowedDomains(u.domain),
		colly.UserAgent(userAgent),
		colly.StdlibContext(ctx),
	)

	return collector
}

// FindBeer searches untappd and visits every hit's beer page concurrently. Hits
// that fail are dropped and their errors combined.
func (u *UntappedWebIntegration) FindBeer(ctx context.Context, name string) ([]model.BeerCandidate, error) {
	collector := u.newCollector(ctx)

	var (
		errs    error
		scraped []BeerScraped
	)

	breweries := make(map[string]breweryDetails)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		item := BeerScraped{}

		err := element.Unmarshal(&item)
		if multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		u.logger.Debug("scraped item from results", zap.String("id", lastSegment(item.IDLink)), zap.String("name", item.Name))

		if _, found := breweries[item.BreweryIDLink]; !found && item.BreweryIDLink != "" {
			details, err := u.getBreweryFromURI(item.BreweryIDLink, collector.Clone())
			if err != nil {
				u.logger.Warn("failed to scrape brewery", zap.String("uri", item.BreweryIDLink), zap.Error(err))
			}

			breweries[item.BreweryIDLink] = details
		}

		scraped = append(scraped, item)
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping beer search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	u.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(u.pageURL("search?q="+url.QueryEscape(name))))

	var wg sync.WaitGroup

	results := make(chan scrapeResult, len(scraped))

	for _, item := range scraped {
		wg.Add(1)

		go func(item BeerScraped) {
			defer wg.Done()

			results <- u.getBeerData(collector.Clone(), item, breweries[item.BreweryIDLink])
		}(item)
	}

	wg.Wait()
	close(results)

	candidates := make([]model.BeerCandidate, 0, len(scraped))

	for result := range results {
		if multierr.AppendInto(&errs, result.err) {
			continue
		}

		candidates = append(candidates, result.candidate)
	}

	u.logger.Info("finished scraping query results", zap.Int("results", len(candidates)), zap.Error(errs))

	return candidates, errs
}

func (u *UntappedWebIntegration) getBeerData(detailCollector *colly.Collector, scraped BeerScraped, brewery breweryDetails) scrapeResult {
	candidate := model.BeerCandidate{
		Source:      IntegrationName,
		Name:        strings.TrimSpace(scraped.Name),
		Brewery:     brewery.Name,
		BreweryCity: brewery.Locality,
		Style:       strings.TrimSpace(scraped.Style),
		ABV:         extractABV(scraped),
		IBU:         extractIBU(scraped),
	}

	if candidate.Brewery == "" {
		candidate.Brewery = strings.TrimSpace(scraped.BreweryName)
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var beerJSON BeerJSON
		if err := json.Unmarshal([]byte(element.Text), &beerJSON); err != nil {
			return
		}

		candidate.Description = beerJSON.Description
		candidate.ImageURL = beerJSON.Image.ContentURL

		if beerJSON.Sku != 0 {
			candidate.ExternalID = pointy.Uint64(beerJSON.Sku)
		}

		if beerJSON.AggregateRating.RatingValue > 0 {
			candidate.ExternalRating = pointy.Float64(beerJSON.AggregateRating.RatingValue)
		}
	})

	detailCollector.OnHTML(".content", func(element *colly.HTMLElement) {
		beerContent := BeerContent{}

		if err := element.Unmarshal(&beerContent); err != nil {
			return
		}

		if candidate.Description == "" {
			candidate.Description = strings.TrimSpace(beerContent.Description)
		}

		if candidate.ImageURL == "" {
			candidate.ImageURL = beerContent.ImageURL
		}

		if candidate.ExternalRating == nil {
			if rating, err := strconv.ParseFloat(strings.TrimSpace(beerContent.Rating), 64); err == nil && rating > 0 {
				candidate.ExternalRating = pointy.Float64(rating)
			}
		}
	})

	idString := lastSegment(scraped.IDLink)
	u.logger.Debug("scraping beer page", zap.String("id", idString))

	err := detailCollector.Visit(u.pageURL("beer/" + idString))
	if err == nil && candidate.ExternalID == nil {
		if externalID, parseErr := strconv.ParseUint(idString, 10, 64); parseErr == nil {
			candidate.ExternalID = pointy.Uint64(externalID)
		}
	}

	return scrapeResult{candidate: candidate, err: err}
}

func lastSegment(link string) string {
	return link[strings.LastIndex(link, "/")+1:]
}

func extractABV(details BeerScraped) *float64 {
	index := strings.Index(details.ABV, "%")
	if index < 0 {
		return nil
	}

	abv, err := strconv.ParseFloat(strings.TrimSpace(details.ABV[:index]), 64)
	if err != nil {
		return nil
	}

	return pointy.Float64(abv)
}

func extractIBU(details BeerScraped) *int64 {
	text := strings.TrimSpace(details.IBU)
	if text == "" || strings.HasPrefix(text, "N/A") {
		return nil
	}

	ibu, err := strconv.ParseInt(strings.Fields(text)[0], 10, 64)
	if err != nil {
		return nil
	}

	return pointy.Int64(ibu)
}
