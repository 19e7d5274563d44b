package models

// Flash severities, matching the CSS classes used by the web front end.
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// Flash is a one-shot user notification returned alongside a response.
// swagger:model Flash
type Flash struct {
	// Message shown to the user
	// example: Login successful!
	Message string `json:"message"`

	// Severity of the message
	// example: success
	Severity string `json:"severity"`
}

// NewFlash returns a single-element notification list.
func NewFlash(message, severity string) []Flash {
	return []Flash{{Message: message, Severity: severity}}
}

// FlashResponse is the body of responses that only carry notifications.
// swagger:model FlashResponse
type FlashResponse struct {
	// Notifications for the user
	Flash []Flash `json:"flash"`

	// Next step suggested to the client
	// example: /login
	Redirect string `json:"redirect,omitempty"`
}
