package services

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log"
	"path"
	"strings"
	texttemplate "text/template"

	"najma_site_go/config"
	"najma_site_go/models"

	"github.com/resend/resend-go/v2"
)

//go:embed templates/emails
var emailTemplates embed.FS

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// loadTemplate renders templateName + "_" + lang, falling back to the base template.
// HTML templates are optional; the text template is required.
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	read := func(ext string) ([]byte, string, error) {
		localized := path.Join("templates/emails", fmt.Sprintf("%s_%s%s", templateName, lang, ext))
		if content, err := emailTemplates.ReadFile(localized); err == nil {
			return content, localized, nil
		}
		base := path.Join("templates/emails", templateName+ext)
		content, err := emailTemplates.ReadFile(base)
		if err != nil {
			return nil, base, fmt.Errorf("failed to read template %s: %w", base, err)
		}
		return content, base, nil
	}

	textContent, textPath, err := read(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(path.Base(textPath)).Parse(string(textContent))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", textPath, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", textPath, err)
	}

	htmlContent, htmlPath, err := read(".html")
	if err != nil {
		return "", textBuf.String(), nil
	}
	htmlTmpl, err := htmltemplate.New(path.Base(htmlPath)).Parse(string(htmlContent))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", htmlPath, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", htmlPath, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("✅ Email logged successfully (development mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}

// SendEmailAsync sends an email in a goroutine so handlers are not blocked
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

// QuoteNotificationData contains data for the quote notification template
type QuoteNotificationData struct {
	models.QuoteRequest
	SubmissionID string
}

// BuildQuoteNotificationEmail creates the internal notification for a new quote request
func BuildQuoteNotificationEmail(to string, req models.QuoteRequest, submissionID, lang string) (*Email, error) {
	html, text, err := loadTemplate("quote_notification", lang, QuoteNotificationData{QuoteRequest: req, SubmissionID: submissionID})
	if err != nil {
		return nil, err
	}
	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("New quote request: %s (%s)", req.Product, req.Name),
		HTMLBody: html,
		TextBody: text,
	}, nil
}

// NotifyQuoteRequest sends the notification when a lead inbox is configured
func NotifyQuoteRequest(cfg *config.Config, req models.QuoteRequest, submissionID, lang string) {
	if cfg.LeadNotifyEmail == "" {
		return
	}
	email, err := BuildQuoteNotificationEmail(cfg.LeadNotifyEmail, req, submissionID, lang)
	if err != nil {
		log.Printf("[WARNING] Failed to build quote notification: %v", err)
		return
	}
	SendEmailAsync(cfg, email)
}
