// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	hmacauth "blitznote.com/src/http.hmac"
	auth "blitznote.com/src/http.hmac/signature.auth"
)

type serverConfig struct {
	Address  string
	Env      string
	LogLevel zerolog.Level
	HMAC     *hmacauth.Configuration
}

// lookup is os.Getenv, replaceable in tests.
type lookup func(key string) string

func (l lookup) getenv(key, def string) string {
	if v := l(key); v != "" {
		return v
	}
	return def
}

// loadConfig reads the environment:
//
//  HMAC_SECRET          shared secret in base64, required
//  HMAC_ALGORITHM       sha256
//  HMAC_HEADER          X-Signature
//  HMAC_FORMAT          {}
//  HMAC_MAX_BODY_SIZE   0 (unlimited)
//  LISTEN_ADDRESS       :9000
//  APP_ENV              production
//  LOG_LEVEL            info
func loadConfig(env lookup) (serverConfig, error) {
	if env == nil {
		env = os.Getenv
	}
	cfg := serverConfig{
		Address: env.getenv("LISTEN_ADDRESS", ":9000"),
		Env:     env.getenv("APP_ENV", "production"),
		HMAC:    hmacauth.NewDefaultConfiguration(nil),
	}

	level, err := zerolog.ParseLevel(env.getenv("LOG_LEVEL", "info"))
	if err != nil {
		return cfg, errors.Wrap(err, "LOG_LEVEL")
	}
	cfg.LogLevel = level

	secret := env("HMAC_SECRET")
	if secret == "" {
		return cfg, errors.New("HMAC_SECRET is required")
	}
	if err := cfg.HMAC.SetSharedSecret(secret); err != nil {
		return cfg, errors.Wrap(err, "HMAC_SECRET")
	}
	if err := cfg.HMAC.SetAlgorithm(env.getenv("HMAC_ALGORITHM", string(auth.SHA256))); err != nil {
		return cfg, errors.Wrap(err, "HMAC_ALGORITHM")
	}
	cfg.HMAC.HeaderField = env.getenv("HMAC_HEADER", auth.DefaultHeaderField)
	cfg.HMAC.HeaderFormat = env.getenv("HMAC_FORMAT", auth.Placeholder)

	if s := env("HMAC_MAX_BODY_SIZE"); s != "" {
		n, err := strconv.ParseUint(s, 10, 63)
		if err != nil {
			return cfg, errors.Wrap(err, "HMAC_MAX_BODY_SIZE")
		}
		cfg.HMAC.MaxBodySize = int64(n)
	}

	return cfg, nil
}
