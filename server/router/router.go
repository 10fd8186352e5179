// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"

	"codeberg.org/mikyai/website/server/middleware"
	"codeberg.org/mikyai/website/server/middleware/limiter"
)

// Router is an http.ServeMux behind a middleware chain.
type Router struct {
	mux         *http.ServeMux
	middlewares []middleware.Middleware
	chain       http.Handler
}

// NewRouter creates a Router with no routes and no middleware.
func NewRouter() *Router {
	mux := http.NewServeMux()

	return &Router{mux: mux, chain: mux}
}

// Use appends m to the chain. Middleware runs in the order it was added.
func (router *Router) Use(m middleware.Middleware) {
	router.middlewares = append(router.middlewares, m)

	var h http.Handler = router.mux

	for i := len(router.middlewares) - 1; i >= 0; i-- {
		m, next := router.middlewares[i], h
		h = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m(w, r, next)
		})
	}

	router.chain = h
}

func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.chain.ServeHTTP(w, r)
}

// handle registers a plain handler, for assets and redirects.
func (router *Router) handle(pattern string, h http.Handler) {
	router.mux.Handle(pattern, h)
}

// page registers a handler whose errors are rendered by middleware.CatchError.
func (router *Router) page(pattern string, h limiter.FallibleHandler) {
	router.mux.HandleFunc(pattern, middleware.CatchError(h))
}

// guarded is page with the rate limit of profile in front.
func (router *Router) guarded(pattern string, profile limiter.Profile, h limiter.FallibleHandler) {
	router.page(pattern, limiter.Guard(profile, h))
}
