package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"najma_site_go/config"
	"najma_site_go/models"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// SubmissionResult describes one attempt to post a form to the external endpoint
type SubmissionResult struct {
	ID         string
	Outcome    models.SubmissionOutcome
	StatusCode int
	Err        error
}

// FormSubmitter posts lead-capture forms to the external form service.
// Implementations make exactly one attempt per call.
type FormSubmitter interface {
	Submit(ctx context.Context, form url.Values) SubmissionResult
}

// Forms is the global submitter used by the form handlers
var Forms FormSubmitter

// InitializeForms sets up the submitter from configuration
func InitializeForms(cfg *config.Config) {
	Forms = NewFormspreeSubmitter(cfg.FormEndpoint, cfg.FormTimeout)
	log.Printf("Form submitter configured (endpoint: %s, timeout: %s)", cfg.FormEndpoint, cfg.FormTimeout)
}

// FormspreeSubmitter relays forms to a Formspree-compatible endpoint
type FormspreeSubmitter struct {
	client   *resty.Client
	endpoint string
}

// NewFormspreeSubmitter creates a submitter with retries disabled
func NewFormspreeSubmitter(endpoint string, timeout time.Duration) *FormspreeSubmitter {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &FormspreeSubmitter{
		client:   client,
		endpoint: endpoint,
	}
}

// Submit posts the trimmed form once and classifies the response
func (s *FormspreeSubmitter) Submit(ctx context.Context, form url.Values) SubmissionResult {
	result := SubmissionResult{ID: uuid.New().String()}

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormDataFromValues(trimForm(form)).
		Post(s.endpoint)
	if err != nil {
		result.Outcome = models.SubmissionNetworkError
		result.Err = fmt.Errorf("form submission %s failed: %w", result.ID, err)
		log.Printf("[WARNING] %v", result.Err)
		return result
	}

	result.StatusCode = resp.StatusCode()
	if resp.IsSuccess() {
		result.Outcome = models.SubmissionSucceeded
		log.Printf("[INFO] Form submission %s accepted (status %d)", result.ID, result.StatusCode)
		return result
	}

	result.Outcome = models.SubmissionRejected
	result.Err = fmt.Errorf("form submission %s rejected with status %d", result.ID, result.StatusCode)
	log.Printf("[WARNING] %v", result.Err)
	return result
}

// trimForm trims surrounding whitespace. Values are otherwise sent as typed;
// pages and emails escape them on output.
func trimForm(form url.Values) url.Values {
	trimmed := make(url.Values, len(form))
	for key, values := range form {
		for _, v := range values {
			trimmed.Add(key, strings.TrimSpace(v))
		}
	}
	return trimmed
}
