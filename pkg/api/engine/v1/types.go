// Package v1 defines the wire types for the engine HTTP API.
package v1

// Response type discriminators.
const (
	TypeStatus    = "status"
	TypeUserInput = "user_input"
)

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Type string `json:"type"`
	// Message carries the lucky number line.
	Message   string  `json:"message"`
	Count     int64   `json:"count"`
	Timestamp float64 `json:"timestamp"`
}

// InputRequest is the body of POST /input.
type InputRequest struct {
	Input string `json:"input"`
}

// InputResponse is the body of a successful POST /input.
type InputResponse struct {
	Type    string `json:"type"`
	Input   string `json:"input"`
	Message string `json:"message"`
	// Output is the vowel-stripped input. Omitted when stripping is disabled.
	Output    *string `json:"output,omitempty"`
	Count     int64   `json:"count"`
	Timestamp float64 `json:"timestamp"`
}

// StopResponse is the body of POST /stop.
type StopResponse struct {
	Status string `json:"status"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Well-known status values.
const (
	StatusOK       = "ok"
	StatusStopping = "stopping"
)
