// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"time"

	"codeberg.org/mikyai/website/assets"
	"codeberg.org/mikyai/website/assets/views"
	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/middleware/limiter"
	"codeberg.org/mikyai/website/server/routes"
)

// DefineRoutes registers every route of the site.
//
// Pages are registered once per locale under their explicit prefix
// (/en/pricing, /es/pricing, ...). middleware.Localize rewrites unprefixed
// requests onto the /en tree, so the visible URLs of the default locale stay
// unprefixed.
func (router *Router) DefineRoutes() {
	fileServerHandler := fileServer()

	router.handle("GET /manifest.json", fileServerHandler)
	router.handle("GET /robots.txt", fileServerHandler)
	router.handle("GET /favicon.svg", serveAsset("img/favicon.svg", fileServerHandler))

	// Patterns ending in "/" are prefix matches.
	router.handle("GET /img/", fileServerHandler)
	router.handle("GET /css/", fileServerHandler)
	router.handle("GET /js/", fileServerHandler)
	router.handle("GET /fonts/", fileServerHandler)

	for _, l := range i18n.Locales() {
		router.definePages(l)
	}

	// Admin routes
	router.page("GET /admin", routes.AdminStatusPage)
	router.page("GET /admin/login", routes.AdminLoginPage)
	router.guarded("POST /admin/login", limiter.Login, routes.AdminLogin)
	router.page("POST "+views.AdminLogoutPath, routes.AdminLogout)

	// API routes
	router.page("GET /api/test-signup", routes.TestSignupStatus)
	router.guarded("POST /api/test-signup", limiter.API, routes.TestSignup)
	router.page("GET /health", routes.Health)

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}

	// Everything else gets the themed 404 page.
	router.page("/", func(w http.ResponseWriter, r *http.Request) error {
		http.NotFound(w, r)

		return nil
	})
}

// definePages registers the public pages of locale l.
func (router *Router) definePages(l i18n.Locale) {
	prefix := l.ExplicitPath("/")

	router.page("GET "+prefix, routes.IndexPage)
	router.page("GET "+prefix+"/how-it-works", routes.HowItWorksPage)
	router.page("GET "+prefix+"/pricing", routes.PricingPage)
	router.page("GET "+prefix+"/refer", routes.ReferPage)
	router.page("GET "+prefix+"/chat", routes.ChatPage)

	router.page("GET "+prefix+"/contact", routes.ContactPage)
	router.guarded("POST "+prefix+"/contact", limiter.Contact(), routes.ContactSubmit)

	for _, doc := range views.LegalDocs {
		router.page("GET "+prefix+"/legal/"+doc, routes.LegalPage(doc))
	}

	for from, doc := range legacyLegalPaths {
		router.handle("GET "+prefix+from, redirectTo(l.Path("/legal/"+doc)))
	}
}

// Serve static files from embedded assets.
//
// Cache-Control is chosen by middleware.SetResponseHeaders from the path.
func fileServer() http.Handler {
	fileServer := http.FileServer(http.FS(assets.FS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Using a strong ETag for static files embedded via go:embed
		// ref: https://www.rfc-editor.org/rfc/rfc9110#weak.and.strong.validators
		//
		// go:embed requires a rebuild when files change, so a per-instance
		// cache ID makes browsers fetch fresh content after a deployment.
		w.Header().Set("ETag", config.Global.Instance.FileServerCacheID)
		fileServer.ServeHTTP(w, r)
	})
}

// serveAsset serves the embedded file at name for a fixed public path.
func serveAsset(name string, files http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(r.Context())
		r2.URL.Path = "/" + name
		r2.URL.RawPath = ""

		files.ServeHTTP(w, r2)
	}
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	err := flightRecorder.Start()
	if err != nil {
		panic(err)
	}

	router.mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.mux.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, r *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
