package services

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"najma_site_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

//go:embed content/site.yaml
var embeddedSiteContent []byte

// Catalog is the immutable static content of the site. Accessors return copies.
type Catalog struct {
	content models.Catalog
}

// SiteContent is the global catalog instance
var SiteContent *Catalog

// InitializeCatalog loads the catalog from path, or from the embedded content when path is empty
func InitializeCatalog(path string) error {
	data := embeddedSiteContent
	source := "embedded"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		data = b
		source = path
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return err
	}
	SiteContent = catalog
	log.Printf("[INFO] Catalog loaded from %s (%d products, %d stats)", source, len(catalog.content.Products), len(catalog.content.Stats))
	return nil
}

// ParseCatalog decodes and validates a YAML catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var content models.Catalog
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := validateCatalog(&content); err != nil {
		return nil, err
	}
	sanitizeDescriptions(&content)
	return &Catalog{content: content}, nil
}

// sanitizeDescriptions keeps inline markup such as <strong> or links in product and
// feature descriptions and drops anything unsafe. Descriptions are rendered as HTML.
func sanitizeDescriptions(c *models.Catalog) {
	p := bluemonday.UGCPolicy()
	for i := range c.Products {
		c.Products[i].Description = p.Sanitize(c.Products[i].Description)
	}
	for i := range c.Features {
		c.Features[i].Description = p.Sanitize(c.Features[i].Description)
	}
}

func validateCatalog(c *models.Catalog) error {
	seen := make(map[string]bool)
	for i, p := range c.Products {
		if p.ID == "" || p.Title == "" {
			return fmt.Errorf("product %d: id and title are required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
	}

	seen = make(map[string]bool)
	for i, s := range c.Stats {
		if s.ID == "" {
			return fmt.Errorf("stat %d: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate stat id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

func (c *Catalog) Products() []models.ProductEntry {
	return append([]models.ProductEntry(nil), c.content.Products...)
}

func (c *Catalog) TrustLogos() []string {
	return append([]string(nil), c.content.TrustLogos...)
}

func (c *Catalog) Testimonials() []models.Testimonial {
	return append([]models.Testimonial(nil), c.content.Testimonials...)
}

func (c *Catalog) Features() []models.Feature {
	return append([]models.Feature(nil), c.content.Features...)
}

func (c *Catalog) Reasons() []models.Reason {
	return append([]models.Reason(nil), c.content.Reasons...)
}

func (c *Catalog) Stats() []models.Stat {
	return append([]models.Stat(nil), c.content.Stats...)
}

func (c *Catalog) Gallery() []models.GalleryImage {
	return append([]models.GalleryImage(nil), c.content.Gallery...)
}

func (c *Catalog) HeroVideo() string { return c.content.HeroVideo }

func (c *Catalog) Logo() string { return c.content.Logo }

// Stat looks up a counter by id
func (c *Catalog) Stat(id string) (models.Stat, bool) {
	for _, s := range c.content.Stats {
		if s.ID == id {
			return s, true
		}
	}
	return models.Stat{}, false
}

// Product looks up a product by id
func (c *Catalog) Product(id string) (models.ProductEntry, bool) {
	for _, p := range c.content.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.ProductEntry{}, false
}
