package components

import (
	"context"
	"net/url"
	"strings"

	"najma_site_go/middleware"
	"najma_site_go/services"
)

// AssetURL is a cache-busted URL for a file under /static
func AssetURL(ctx context.Context, name string) string {
	return "/static/" + name + "?v=" + middleware.AssetVersion(ctx, name)
}

// MediaURL resolves an image or video key against the configured media host
func MediaURL(key string) string {
	return services.Media.GetPublicURL(key)
}

// MailtoURL builds a mailto link with an encoded subject
func MailtoURL(email, subject string) string {
	u := "mailto:" + email
	if subject != "" {
		u += "?subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
	}
	return u
}

// WhatsAppURL links to a chat with the given international number
func WhatsAppURL(number string) string {
	return "https://wa.me/" + strings.TrimPrefix(digitsOnly(number), "00")
}

// TelURL builds a tel: link, keeping a leading "+"
func TelURL(phone string) string {
	phone = strings.TrimSpace(phone)
	prefix := ""
	if strings.HasPrefix(phone, "+") {
		prefix = "+"
	}
	return "tel:" + prefix + digitsOnly(phone)
}

// QuoteURL is the fragment endpoint that opens the quote dialog for a product
func QuoteURL(product string) string {
	if product == "" {
		return "/quote"
	}
	return "/quote?product=" + url.QueryEscape(product)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
