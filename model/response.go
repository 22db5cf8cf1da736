package model

// ErrorResponse is the body written for failed requests
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
