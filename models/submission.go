package models

// SubmissionOutcome classifies a single form submission attempt
type SubmissionOutcome int

const (
	// SubmissionSucceeded means the endpoint answered with a 2xx status
	SubmissionSucceeded SubmissionOutcome = iota
	// SubmissionRejected means the endpoint answered with any other status
	SubmissionRejected
	// SubmissionNetworkError means no response was received
	SubmissionNetworkError
)

func (o SubmissionOutcome) String() string {
	switch o {
	case SubmissionSucceeded:
		return "succeeded"
	case SubmissionRejected:
		return "rejected"
	case SubmissionNetworkError:
		return "network_error"
	default:
		return "unknown"
	}
}
