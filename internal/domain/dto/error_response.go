package dto

import "time"

// ErrorResponse is the standard JSON error body returned by middleware.
type ErrorResponse struct {
	Message      string    `json:"message" example:"Internal server error"`
	ErrorDetails string    `json:"error,omitempty" example:"boom"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
