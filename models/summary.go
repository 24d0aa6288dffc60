package models

// DeliveryFailure records one recipient whose email could not be delivered.
type DeliveryFailure struct {
	Recipient string `json:"recipient"`
	Error     string `json:"error"`
}

// MatchSummary is the response body for a match notification run. Message is
// set only when email delivery is not configured and dispatch was skipped.
type MatchSummary struct {
	Category   string            `json:"category"`
	Recipients []string          `json:"recipients"`
	Sent       []string          `json:"sent"`
	Failures   []DeliveryFailure `json:"failures"`
	Total      int               `json:"total_recipients"`
	Message    string            `json:"message,omitempty"`
}
