package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"najma_site_go/config"
	"najma_site_go/services/i18n"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the page and its translated variants
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	baseURL := cfg.AppURL

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
	}
	for _, lang := range i18n.Languages() {
		if lang == "en" {
			continue
		}
		urls = append(urls, SitemapURL{Loc: baseURL + "/?lang=" + lang, ChangeFreq: "weekly", Priority: 0.9})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler allows crawling in production only
func GetRobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if cfg.IsProduction() {
		b.WriteString("Allow: /\n")
		b.WriteString("Disallow: /counters/\n")
		b.WriteString("Disallow: /quote\n")
		b.WriteString("Disallow: /newsletter\n")
	} else {
		b.WriteString("Disallow: /\n")
	}
	b.WriteString("\nSitemap: " + cfg.AppURL + "/sitemap.xml\n")

	return c.String(http.StatusOK, b.String())
}
