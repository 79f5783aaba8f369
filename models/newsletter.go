package models

import "time"

// NewsletterStatusTTL is how long a newsletter status message stays visible
const NewsletterStatusTTL = 4000 * time.Millisecond

// NewsletterStatus is the transient message under the newsletter form.
// An empty Message means nothing is shown.
type NewsletterStatus struct {
	Message    string
	ClearAfter time.Duration
}

// IsEmpty reports whether there is no message to display
func (s NewsletterStatus) IsEmpty() bool {
	return s.Message == ""
}
