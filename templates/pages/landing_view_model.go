package pages

import (
	"time"

	"najma_site_go/config"
	"najma_site_go/models"
	"najma_site_go/services"
	"najma_site_go/templates/layouts"
	"najma_site_go/templates/partials"
)

// LandingViewModel holds the data for the landing page
type LandingViewModel struct {
	Page layouts.Page

	Logo         string
	HeroVideo    string
	Products     []models.ProductEntry
	TrustLogos   []string
	Testimonials []models.Testimonial
	Features     []models.Feature
	Reasons      []models.Reason
	Stats        []models.Stat
	Gallery      []models.GalleryImage

	ContactPhone   string
	ContactEmail   string
	WhatsAppNumber string
	Year           int

	Quote      partials.QuoteModalData
	Newsletter models.NewsletterStatus
}

// NewLandingViewModel fills the page from the catalog and the contact configuration.
// The quote dialog starts closed and the newsletter status empty.
func NewLandingViewModel(cfg *config.Config, catalog *services.Catalog, page layouts.Page) LandingViewModel {
	return LandingViewModel{
		Page:           page,
		Logo:           catalog.Logo(),
		HeroVideo:      catalog.HeroVideo(),
		Products:       catalog.Products(),
		TrustLogos:     catalog.TrustLogos(),
		Testimonials:   catalog.Testimonials(),
		Features:       catalog.Features(),
		Reasons:        catalog.Reasons(),
		Stats:          catalog.Stats(),
		Gallery:        catalog.Gallery(),
		ContactPhone:   cfg.ContactPhone,
		ContactEmail:   cfg.ContactEmail,
		WhatsAppNumber: cfg.WhatsAppNumber,
		Year:           time.Now().Year(),
		Quote: partials.QuoteModalData{
			CSRFToken:        page.CSRFToken,
			TurnstileSiteKey: page.TurnstileSiteKey,
		},
	}
}

// Organization is the schema.org description of the business
func Organization(cfg *config.Config, logoURL string) map[string]interface{} {
	return map[string]interface{}{
		"@context":  "https://schema.org",
		"@type":     "Organization",
		"name":      "Najma Al Khautar",
		"url":       cfg.AppURL + "/",
		"logo":      logoURL,
		"telephone": cfg.ContactPhone,
		"email":     cfg.ContactEmail,
	}
}
