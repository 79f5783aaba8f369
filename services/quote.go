package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"najma_site_go/models"
)

const (
	QuoteSuccessMessage      = "✅ Request sent — we will reply with a clear export quote within 24 hours."
	QuoteFailureMessage      = "❌ Request failed. Try again later."
	QuoteNetworkErrorMessage = "❌ Network error."
)

// ErrMissingName is returned when the required name field is empty
var ErrMissingName = errors.New("name is required")

// ParseQuoteRequest reads the quote form fields
func ParseQuoteRequest(form url.Values) models.QuoteRequest {
	get := func(key string) string { return strings.TrimSpace(form.Get(key)) }

	req := models.QuoteRequest{
		Product: get("product"),
		Company: get("company"),
		Name:    get("name"),
		Email:   get("email"),
		Phone:   get("phone"),
		Message: get("message"),
	}
	if req.Product == "" {
		req.Product = models.GeneralInquiry
	}
	return req
}

// ValidateQuoteRequest applies the same required/email constraints as the form markup
func ValidateQuoteRequest(req models.QuoteRequest) error {
	if req.Name == "" {
		return ErrMissingName
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	return nil
}

// QuoteForm encodes a quote request for the form endpoint
func QuoteForm(req models.QuoteRequest) url.Values {
	form := url.Values{}
	form.Set("product", req.Product)
	form.Set("company", req.Company)
	form.Set("name", req.Name)
	form.Set("email", req.Email)
	form.Set("phone", req.Phone)
	form.Set("message", req.Message)
	form.Set("_subject", fmt.Sprintf("Quote request: %s", req.Product))
	return form
}

// SubmitQuote sends a quote request and returns what the modal should show
func SubmitQuote(ctx context.Context, submitter FormSubmitter, req models.QuoteRequest) (models.QuoteResult, SubmissionResult) {
	result := submitter.Submit(ctx, QuoteForm(req))

	quote := models.QuoteResult{Product: req.Product, Outcome: result.Outcome}
	switch result.Outcome {
	case models.SubmissionSucceeded:
		quote.Message = QuoteSuccessMessage
	case models.SubmissionRejected:
		quote.Message = QuoteFailureMessage
	default:
		quote.Message = QuoteNetworkErrorMessage
	}
	return quote, result
}
