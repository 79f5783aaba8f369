package models

// ProductEntry is a product card on the landing page
type ProductEntry struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Testimonial is a customer quote with its attribution
type Testimonial struct {
	Quote  string `yaml:"quote" json:"quote"`
	Author string `yaml:"author" json:"author"`
}

// Feature is a "why choose us" card
type Feature struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Reason is a bullet in the "why choose us" list
type Reason struct {
	Headline string `yaml:"headline" json:"headline"`
	Detail   string `yaml:"detail" json:"detail"`
}

// Stat is an animated counter. End is a float so that non-finite targets
// (.inf / .nan in the content file) can be expressed and rejected.
type Stat struct {
	ID    string  `yaml:"id" json:"id"`
	Label string  `yaml:"label" json:"label"`
	End   float64 `yaml:"end" json:"end"`
}

// GalleryImage is a slide in the CSS gallery
type GalleryImage struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// Catalog is the static content of the site
type Catalog struct {
	Products     []ProductEntry `yaml:"products"`
	TrustLogos   []string       `yaml:"trust_logos"`
	Testimonials []Testimonial  `yaml:"testimonials"`
	Features     []Feature      `yaml:"features"`
	Reasons      []Reason       `yaml:"reasons"`
	Stats        []Stat         `yaml:"stats"`
	Gallery      []GalleryImage `yaml:"gallery"`
	HeroVideo    string         `yaml:"hero_video"`
	Logo         string         `yaml:"logo"`
}
