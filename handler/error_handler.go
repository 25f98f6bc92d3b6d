package handler

import (
	"fmt"
	"net/http"

	"scoring-api/common"
)

// ErrorHandlingMiddleware turns the *AppError returned by a handler into
// the error envelope. A panic inside business logic is classified as an
// internal error and logged; no response content is returned.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				common.NewAppError(http.StatusInternalServerError, "", fmt.Errorf("panic: %v", rec)).Send(w)
			}
		}()
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
