package services

import (
	"context"
	"errors"
	"net/mail"
	"net/url"
	"strings"

	"najma_site_go/models"
)

const (
	NewsletterSuccessMessage      = "✅ Subscribed — thank you!"
	NewsletterFailureMessage      = "❌ Subscription failed. Try again later."
	NewsletterNetworkErrorMessage = "❌ Network error."
)

// ErrInvalidEmail is returned when an email field is empty or malformed
var ErrInvalidEmail = errors.New("a valid email address is required")

// ValidateEmail mirrors the browser's required + type=email constraint
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// Subscribe sends a newsletter signup and returns the status message to show
func Subscribe(ctx context.Context, submitter FormSubmitter, email string) (models.NewsletterStatus, SubmissionResult) {
	form := url.Values{}
	form.Set("email", strings.TrimSpace(email))
	form.Set("_subject", "Newsletter signup")

	result := submitter.Submit(ctx, form)
	return NewsletterStatusFor(result.Outcome), result
}

// NewsletterStatusFor maps a submission outcome to its status message
func NewsletterStatusFor(outcome models.SubmissionOutcome) models.NewsletterStatus {
	status := models.NewsletterStatus{ClearAfter: models.NewsletterStatusTTL}
	switch outcome {
	case models.SubmissionSucceeded:
		status.Message = NewsletterSuccessMessage
	case models.SubmissionRejected:
		status.Message = NewsletterFailureMessage
	default:
		status.Message = NewsletterNetworkErrorMessage
	}
	return status
}
