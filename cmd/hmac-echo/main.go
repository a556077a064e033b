// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hmac-echo is a minimal http server which answers only to signed requests.
//
// For example, this is how you'd use it with `curl`:
//  HMAC_SECRET=RZ9FvpusdSdjHT0hjv3eRgw4WNj12GYZu3pN3r/jVKE= \
//  HMAC_HEADER=Authorization HMAC_FORMAT='HMAC {}' \
//    go run ./cmd/hmac-echo &
//  curl --data-binary '{"text": "test"}' \
//    --header 'Authorization: HMAC uYRUNd8Qu0vogK9Kv92FWZrFMsoroEl0RfE8hMUJAl8=' \
//    http://127.0.0.1:9000/post
//
// Settings are read from the environment, and from file .env if present.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	hmacauth "blitznote.com/src/http.hmac"
)

// newRouter puts verification in front of all routes,
// so that even requests to unknown paths need a valid signature.
func newRouter(cfg *hmacauth.Configuration) (http.Handler, error) {
	verify, err := hmacauth.Middleware(cfg)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"hello": "world"})
	}).Methods(http.MethodGet)
	router.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		var payload interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "malformed JSON", http.StatusBadRequest)
			return
		}
		writeJSON(w, payload)
	}).Methods(http.MethodPost)

	return verify(router), nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("cannot write response")
	}
}

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339Nano
	cfg, err := loadConfig(nil)
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	cfg.HMAC.Logger = &log.Logger

	router, err := newRouter(cfg.HMAC)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := unveilBlock(); err != nil {
		log.Fatal().Err(err).Msg("cannot drop filesystem access")
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("addr", cfg.Address).
			Str("header", cfg.HMAC.HeaderField).
			Str("format", cfg.HMAC.HeaderFormat).
			Str("algorithm", string(cfg.HMAC.Algorithm)).
			Msg("hmac-echo starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = srv.Close()
	}
	log.Info().Msg("server stopped")
}
