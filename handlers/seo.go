package handlers

import (
	"strings"

	"najma_site_go/config"
	"najma_site_go/models"
	"najma_site_go/services"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/pages"
)

// siteSEO is the landing page metadata, built once from configuration
var siteSEO *models.SEO

// organization is the JSON-LD description emitted on every full page
var organization map[string]interface{}

// InitSite applies the configured page metadata. Call once at startup,
// after the catalog is loaded.
func InitSite(cfg *config.Config) {
	siteSEO = models.SiteSEO(cfg.SiteTitle, cfg.SiteDescription, cfg.AppURL)
	if !cfg.IsProduction() {
		siteSEO.WithNoIndex()
	}

	logoURL := ""
	if services.SiteContent != nil {
		logoURL = absoluteURL(cfg, services.Media.GetPublicURL(services.SiteContent.Logo()))
	}
	organization = pages.Organization(cfg, logoURL)
}

// GetSEO returns a copy of the site metadata for the given locale
func GetSEO(lang string) *models.SEO {
	if siteSEO == nil {
		return nil
	}

	var alternates []string
	for _, l := range i18n.Languages() {
		if l != lang {
			alternates = append(alternates, l)
		}
	}
	return siteSEO.Copy().WithLocale(lang, alternates...)
}

// absoluteURL prefixes app-relative paths with the public base URL
func absoluteURL(cfg *config.Config, u string) string {
	if strings.HasPrefix(u, "/") {
		return cfg.AppURL + u
	}
	return u
}
