// Package dto holds the JSON request and response shapes of the REST API.
package dto

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
