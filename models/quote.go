package models

import "strings"

// GeneralInquiry is the product title used when a quote is opened without one
const GeneralInquiry = "General Inquiry"

// QuoteDialog is the state of the quote request modal.
// The zero value is a closed dialog.
type QuoteDialog struct {
	IsOpen          bool
	SelectedProduct string
}

// Open shows the dialog for the given product. The title is trimmed, and an empty
// or whitespace-only title opens the dialog as GeneralInquiry.
func (d *QuoteDialog) Open(productTitle string) {
	productTitle = strings.TrimSpace(productTitle)
	if productTitle == "" {
		productTitle = GeneralInquiry
	}
	d.SelectedProduct = productTitle
	d.IsOpen = true
}

// Close hides the dialog and forgets the product
func (d *QuoteDialog) Close() {
	d.IsOpen = false
	d.SelectedProduct = ""
}

// QuoteRequest holds the fields of a submitted quote form
type QuoteRequest struct {
	Product string
	Company string
	Name    string
	Email   string
	Phone   string
	Message string
}

// QuoteResult is what the modal shows after a submission attempt
type QuoteResult struct {
	Product string
	Outcome SubmissionOutcome
	Message string
}
