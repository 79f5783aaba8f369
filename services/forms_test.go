package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"najma_site_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEndpoint is a stand-in for the external form service
type recordingEndpoint struct {
	mu     sync.Mutex
	status int
	hits   int
	forms  []url.Values
	accept string
}

func (e *recordingEndpoint) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e.mu.Lock()
		defer e.mu.Unlock()
		_ = r.ParseForm()
		e.hits++
		e.forms = append(e.forms, r.PostForm)
		e.accept = r.Header.Get("Accept")
		w.WriteHeader(e.status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}
}

func newEndpoint(t *testing.T, status int) (*recordingEndpoint, *httptest.Server) {
	t.Helper()
	rec := &recordingEndpoint{status: status}
	server := httptest.NewServer(rec.handler())
	t.Cleanup(server.Close)
	return rec, server
}

func closedEndpointURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	u := server.URL
	server.Close()
	return u
}

func TestFormspreeSubmitter(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rec, server := newEndpoint(t, http.StatusOK)
		s := NewFormspreeSubmitter(server.URL, time.Second)

		result := s.Submit(context.Background(), url.Values{"email": {"buyer@example.com"}})
		assert.Equal(t, models.SubmissionSucceeded, result.Outcome)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.NoError(t, result.Err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, 1, rec.hits)
		assert.Equal(t, "application/json", rec.accept)
		assert.Equal(t, "buyer@example.com", rec.forms[0].Get("email"))
	})

	t.Run("Rejected is attempted once", func(t *testing.T) {
		rec, server := newEndpoint(t, http.StatusUnprocessableEntity)
		s := NewFormspreeSubmitter(server.URL, time.Second)

		result := s.Submit(context.Background(), url.Values{"email": {"x@example.com"}})
		assert.Equal(t, models.SubmissionRejected, result.Outcome)
		assert.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
		assert.Error(t, result.Err)
		assert.Equal(t, 1, rec.hits)
	})

	t.Run("Network error", func(t *testing.T) {
		s := NewFormspreeSubmitter(closedEndpointURL(), time.Second)

		result := s.Submit(context.Background(), url.Values{"email": {"x@example.com"}})
		assert.Equal(t, models.SubmissionNetworkError, result.Outcome)
		assert.Equal(t, 0, result.StatusCode)
		assert.Error(t, result.Err)
	})

	t.Run("Sends values as typed", func(t *testing.T) {
		rec, server := newEndpoint(t, http.StatusOK)
		s := NewFormspreeSubmitter(server.URL, time.Second)

		s.Submit(context.Background(), url.Values{
			"name":    {"  Tom & Jerry <Ltd> "},
			"message": {"Need 5<x<20 tons if price<b and qty>3, ship <Jeddah> port"},
		})
		require.Len(t, rec.forms, 1)
		assert.Equal(t, "Tom & Jerry <Ltd>", rec.forms[0].Get("name"))
		assert.Equal(t, "Need 5<x<20 tons if price<b and qty>3, ship <Jeddah> port", rec.forms[0].Get("message"))
	})
}

// stubSubmitter returns a fixed outcome and records what it was given
type stubSubmitter struct {
	outcome models.SubmissionOutcome
	forms   []url.Values
}

func (s *stubSubmitter) Submit(_ context.Context, form url.Values) SubmissionResult {
	s.forms = append(s.forms, form)
	return SubmissionResult{ID: "stub", Outcome: s.outcome}
}

func TestSubscribe(t *testing.T) {
	cases := map[models.SubmissionOutcome]string{
		models.SubmissionSucceeded:    NewsletterSuccessMessage,
		models.SubmissionRejected:     NewsletterFailureMessage,
		models.SubmissionNetworkError: NewsletterNetworkErrorMessage,
	}
	for outcome, message := range cases {
		t.Run(outcome.String(), func(t *testing.T) {
			stub := &stubSubmitter{outcome: outcome}
			status, result := Subscribe(context.Background(), stub, " buyer@example.com ")

			assert.Equal(t, message, status.Message)
			assert.Equal(t, 4000*time.Millisecond, status.ClearAfter)
			assert.Equal(t, outcome, result.Outcome)
			require.Len(t, stub.forms, 1)
			assert.Equal(t, "buyer@example.com", stub.forms[0].Get("email"))
		})
	}

	assert.NotEqual(t, NewsletterFailureMessage, NewsletterNetworkErrorMessage)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("buyer@example.com"))
	assert.ErrorIs(t, ValidateEmail(""), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail("Buyer <buyer@example.com>"), ErrInvalidEmail)
}

func TestQuoteRequest(t *testing.T) {
	t.Run("Parse defaults product", func(t *testing.T) {
		req := ParseQuoteRequest(url.Values{"name": {" Ahmed "}, "email": {"a@example.com"}})
		assert.Equal(t, models.GeneralInquiry, req.Product)
		assert.Equal(t, "Ahmed", req.Name)
	})

	t.Run("Validation", func(t *testing.T) {
		assert.ErrorIs(t, ValidateQuoteRequest(models.QuoteRequest{Email: "a@example.com"}), ErrMissingName)
		assert.ErrorIs(t, ValidateQuoteRequest(models.QuoteRequest{Name: "Ahmed", Email: "nope"}), ErrInvalidEmail)
		assert.NoError(t, ValidateQuoteRequest(models.QuoteRequest{Name: "Ahmed", Email: "a@example.com"}))
	})

	t.Run("Submit", func(t *testing.T) {
		stub := &stubSubmitter{outcome: models.SubmissionSucceeded}
		req := models.QuoteRequest{Product: "Wheat", Name: "Ahmed", Email: "a@example.com", Phone: "+971"}

		quote, _ := SubmitQuote(context.Background(), stub, req)
		assert.Equal(t, QuoteSuccessMessage, quote.Message)
		assert.Equal(t, "Wheat", quote.Product)
		require.Len(t, stub.forms, 1)
		assert.Equal(t, "Wheat", stub.forms[0].Get("product"))
		assert.Equal(t, "Quote request: Wheat", stub.forms[0].Get("_subject"))

		stub.outcome = models.SubmissionRejected
		quote, _ = SubmitQuote(context.Background(), stub, req)
		assert.Equal(t, QuoteFailureMessage, quote.Message)

		stub.outcome = models.SubmissionNetworkError
		quote, _ = SubmitQuote(context.Background(), stub, req)
		assert.Equal(t, QuoteNetworkErrorMessage, quote.Message)
	})
}
