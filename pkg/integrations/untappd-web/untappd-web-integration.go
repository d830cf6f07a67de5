package untappdweb

import (
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	IntegrationName = "untappd_web"
	DefaultBaseURL  = "https://untappd.com"
	userAgent       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
)

type UntappedWebIntegration struct {
	baseURL string
	domain  string
	logger  *zap.Logger
}

func NewUntappedWebIntegration(baseURL string, logger *zap.Logger) *UntappedWebIntegration {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	domain := "untappd.com"
	if parsed, err := url.Parse(baseURL); err == nil && parsed.Hostname() != "" {
		domain = parsed.Hostname()
	}

	return &UntappedWebIntegration{baseURL: baseURL, domain: domain, logger: logger}
}

func (u *UntappedWebIntegration) pageURL(path string) string {
	return u.baseURL + "/" + strings.TrimPrefix(path, "/")
}
