package response

import (
	"clientportal/pkg/apperr"
)

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// FromError classifies err through the domain taxonomy and returns the
// matching status code together with an error envelope carrying err's message.
func FromError(err error) (int, Response) {
	code := apperr.HTTPStatus(err)
	return code, Error(code, err.Error())
}
