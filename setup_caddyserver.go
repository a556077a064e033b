// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build caddyserver1.0
// +build caddyserver1.0

package hmacauth

import (
	"net/http"
	"strconv"

	"github.com/caddyserver/caddy"
	"github.com/caddyserver/caddy/caddyhttp/httpserver"
)

func init() {
	caddy.RegisterPlugin("hmac", caddy.Plugin{
		ServerType: "http",
		Action:     Setup,
	})
	// Verification goes before any other authentication.
	httpserver.RegisterDevDirective("hmac", "basicauth")
}

// Setup configures a Handler instance.
//
// This is called by Caddy as consequence of invoking `caddy.RegisterPlugin` in init.
func Setup(c *caddy.Controller) error {
	config, err := parseCaddyConfig(c)
	if err != nil {
		return err
	}

	guards := make(map[string]*guard, len(config.Scope))
	for scope, scopeConfig := range config.Scope {
		g, err := newGuard(scopeConfig)
		if err != nil {
			return c.Err(err.Error())
		}
		guards[scope] = g
	}

	site := httpserver.GetConfig(c)
	site.AddMiddleware(func(next httpserver.Handler) httpserver.Handler {
		return &CaddyHandler{
			Next:   next,
			Config: *config,
			guards: guards,
		}
	})

	return nil
}

// HandlerConfiguration is the result of directives found in a 'Caddyfile'.
//
// The same instance can be used to serve multiple paths, therefore we go through this struct
// to figure out the applicable configuration.
type HandlerConfiguration struct {
	// Prefixes on which Caddy activates this plugin (read-only).
	//
	// Order matters because scopes can overlap.
	PathScopes []string

	// Maps scopes (paths) to their own and potentially differently configurations.
	Scope map[string]*Configuration
}

// CaddyHandler represents a configured instance of this plugin.
type CaddyHandler struct {
	Next   httpserver.Handler
	Config HandlerConfiguration

	guards map[string]*guard
}

// ServeHTTP adapts the actual handler.
func (h *CaddyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) (int, error) {
	// iterate over the scopes in the order they have been defined
	for _, scope := range h.Config.PathScopes {
		if httpserver.Path(r.URL.Path).Matches(scope) {
			return h.guards[scope].serveHTTP(w, r, h.Next.ServeHTTP)
		}
	}
	return h.Next.ServeHTTP(w, r)
}

func parseCaddyConfig(c *caddy.Controller) (*HandlerConfiguration, error) {
	siteConfig := &HandlerConfiguration{
		PathScopes: make([]string, 0, 1),
		Scope:      make(map[string]*Configuration),
	}

	for c.Next() {
		config := NewDefaultConfiguration(nil)

		scopes := c.RemainingArgs() // most likely only one path; but could be more
		if len(scopes) == 0 {
			return siteConfig, c.ArgErr()
		}
		siteConfig.PathScopes = append(siteConfig.PathScopes, scopes...)

		for c.NextBlock() {
			key := c.Val()
			switch key {
			case "secret":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				if err := config.SetSharedSecret(c.Val()); err != nil {
					return siteConfig, c.Err(err.Error())
				}
			case "algorithm":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				if err := config.SetAlgorithm(c.Val()); err != nil {
					return siteConfig, c.Err(err.Error())
				}
			case "header":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				config.HeaderField = c.Val()
			case "format":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				config.HeaderFormat = c.Val()
			case "max_body_size":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				s, err := strconv.ParseUint(c.Val(), 10, 63)
				if err != nil {
					return siteConfig, c.Err(err.Error())
				}
				config.MaxBodySize = int64(s)
			default:
				return siteConfig, c.ArgErr()
			}
		}

		if len(config.SharedSecret) == 0 {
			return siteConfig, c.Errf("The shared 'secret' is missing")
		}
		if _, err := config.verifier(); err != nil {
			return siteConfig, c.Err(err.Error())
		}

		for idx := range scopes {
			siteConfig.Scope[scopes[idx]] = config
		}
	}

	return siteConfig, nil
}
