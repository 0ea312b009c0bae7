package response

import (
	"encoding/json"
	"net/http"
	"todoapi/shared/constant"
	"todoapi/shared/failure"
	"todoapi/shared/logger"
)

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a JSON response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	WithJSON(writer, code, Message{Message: &message})
}

// WithJSON sends the payload encoded as JSON, unwrapped
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	body, err := json.Marshal(jsonPayload)
	if err != nil {
		logger.ErrorWithStack(err)
		WithText(writer, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))

		return
	}

	write(writer, code, constant.ContentTypeJSON, body)
}

// WithText sends a plain text response
func WithText(writer http.ResponseWriter, code int, text string) {
	write(writer, code, constant.ContentTypeText, []byte(text))
}

// WithFailure sends the message of a client facing failure as plain text.
// Anything that is not a 4xx failure is answered 500 with fallback, so store
// details never reach the client.
func WithFailure(writer http.ResponseWriter, err error, fallback string) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		WithText(writer, http.StatusInternalServerError, fallback)

		return
	}

	WithText(writer, code, failure.GetMessage(err))
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
