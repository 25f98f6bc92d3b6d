package common

import (
	"encoding/json"
	"net/http"
	"scoring-api/logger"

	"github.com/sirupsen/logrus"
)

// Default message texts for the error statuses the API can return.
var statusTexts = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusUnprocessableEntity: "Invalid Request",
	http.StatusInternalServerError: "Internal Server Error",
}

// AppError is the failure half of the response envelope: it is serialized
// as {"error": <message>, "code": <status>}.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError builds an AppError. An empty message falls back to the
// default text for the status code.
func NewAppError(code int, message string, err error) *AppError {
	if message == "" {
		message = statusTexts[code]
	}
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}

// SendResponse writes the success half of the envelope:
// {"response": <result>, "code": 200}.
func SendResponse(w http.ResponseWriter, result interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"response": result,
		"code":     http.StatusOK,
	})
}
