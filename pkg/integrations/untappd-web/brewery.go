package untappdweb

import (
	"encoding/json"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
)

type BreweryJSON struct {
	Name    string `json:"name"`
	Address struct {
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
	} `json:"address"`
}

type breweryDetails struct {
	Name     string
	Locality string
}

func (u *UntappedWebIntegration) getBreweryFromURI(uri string, collector *colly.Collector) (breweryDetails, error) {
	var (
		errs    error
		details breweryDetails
	)

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var breweryJSON BreweryJSON
		if multierr.AppendInto(&errs, json.Unmarshal([]byte(element.Text), &breweryJSON)) {
			return
		}

		details = breweryDetails{Name: breweryJSON.Name, Locality: breweryJSON.Address.AddressLocality}
		if breweryJSON.Address.AddressRegion != "" {
			details.Locality += ", " + breweryJSON.Address.AddressRegion
		}
	})

	multierr.AppendInto(&errs, collector.Visit(u.pageURL(uri)))

	return details, errs
}
