package server

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/mybooks/mybooks/api/v1"
	"github.com/mybooks/mybooks/config"
	"github.com/mybooks/mybooks/store"
	"github.com/mybooks/mybooks/version"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// StartServer starts the HTTP server
func StartServer(opts *config.Options, store *store.Store, logger *zap.Logger) *http.Server {
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:      setupHandler(store, logger),
		ReadTimeout:  time.Duration(opts.RequestTimeout) * time.Second,
		WriteTimeout: time.Duration(opts.RequestTimeout) * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	return server
}

func setupHandler(store *store.Store, logger *zap.Logger) http.Handler {
	router := mux.NewRouter()

	apiHandler := v1.NewHandler(store, logger)
	v1.Server(router, apiHandler)

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			logger.Error("healthcheck failed", zap.Error(err))
			http.Error(w, "Database Connection Error", http.StatusInternalServerError)
			return
		}

		w.Write([]byte("OK"))
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	return router
}
