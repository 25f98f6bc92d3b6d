package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"scoring-api/common"
	_ "scoring-api/docs"
	"scoring-api/handler"
)

func NewRouter(methodHandler *handler.MethodHandler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/method", handler.RequestIDMiddleware(handler.ErrorHandlingMiddleware(methodHandler.Method)))
	mux.HandleFunc("/health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Every unknown path gets the JSON error envelope instead of the
	// ServeMux plain-text 404.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		common.NewAppError(http.StatusNotFound, "", nil).Send(w)
	})

	return mux
}
