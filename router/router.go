package router

import (
	_ "expense-tracker/docs"
	"expense-tracker/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter registers every route. Handlers may be nil in tests that only
// touch the health and documentation routes.
func NewRouter(transactionHandler *handler.TransactionHandler, pageHandler *handler.PageHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if pageHandler != nil {
		mux.Handle("GET /{$}", handler.ErrorHandlingMiddleware(pageHandler.Index))
		mux.Handle("POST /{$}", handler.ErrorHandlingMiddleware(pageHandler.Submit))
	}

	if transactionHandler != nil {
		mux.Handle("GET /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))
		mux.Handle("POST /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransaction))
	}

	return handler.Wrap(mux)
}
