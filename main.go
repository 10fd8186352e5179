// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Website serves the public Miky.ai site: the marketing pages in every
supported language, the contact form relay and the operator status page.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"os/user"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/audit"
	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/middleware/limiter"
	"codeberg.org/mikyai/website/server/router"
	"codeberg.org/mikyai/website/server/template"
)

// http.Server timeouts (gosec G112). Pages are small and server rendered;
// the slowest handler is the contact relay, bounded by Contact.Timeout.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownDeadline  = 5 * time.Second
)

var (
	errChmodSocket = errors.New("failed to change unix socket permissions")
	errChownSocket = errors.New("failed to change unix socket ownership")
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := i18n.Setup(); err != nil {
		return fmt.Errorf("failed to initialize i18n engine: %w", err)
	}

	if err := template.LoadIcons("img/icons"); err != nil {
		return fmt.Errorf("failed to load icons: %w", err)
	}

	if config.Global.Limiter.Enabled {
		limiter.Restore()
		defer limiter.Persist()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := listen(ctx)
	if err != nil {
		return err
	}

	return serve(ctx, listener, newServer())
}

func newServer() *http.Server {
	handler := router.NewRouter()
	handler.DefineRoutes()
	handler.RegisterMiddleware()

	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      config.Global.Contact.Timeout + readTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// serve runs server on listener until ctx is cancelled, then drains open
// requests for up to shutdownDeadline.
func serve(ctx context.Context, listener net.Listener, server *http.Server) error {
	served := make(chan error, 1)

	go func() {
		served <- server.Serve(listener)
	}()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownDeadline)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")

	return nil
}

// listen opens the Unix socket when one is configured, TCP otherwise.
func listen(ctx context.Context) (net.Listener, error) {
	basic := config.Global.Basic

	if basic.UnixSocket != "" {
		return listenUnix(ctx, basic.UnixSocket)
	}

	addr := net.JoinHostPort(basic.Host, basic.Port)

	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	port := ""
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}

	log.Info().
		Str("address", ln.Addr().String()).
		Str("url", "http://localhost:"+port+"/").
		Msg("Listening on address")

	return ln, nil
}

func listenUnix(ctx context.Context, path string) (net.Listener, error) {
	ln, err := (&net.ListenConfig{}).Listen(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to start Unix socket listener on %v: %w", path, err)
	}

	if err := prepareSocket(path); err != nil {
		_ = ln.Close()

		return nil, err
	}

	log.Info().
		Str("address", path).
		Msg("Listening on Unix domain socket")

	return ln, nil
}

// prepareSocket applies the configured owner, group and mode to the socket
// file so that a reverse proxy running as another user can connect.
func prepareSocket(path string) error {
	basic := config.Global.Basic

	uid, err := lookupID(basic.UnixSocketUser, func(name string) (string, error) {
		u, err := user.Lookup(name)
		if err != nil {
			return "", err
		}

		return u.Uid, nil
	})
	if err != nil {
		return fmt.Errorf("unix socket user: %w", err)
	}

	gid, err := lookupID(basic.UnixSocketGroup, func(name string) (string, error) {
		g, err := user.LookupGroup(name)
		if err != nil {
			return "", err
		}

		return g.Gid, nil
	})
	if err != nil {
		return fmt.Errorf("unix socket group: %w", err)
	}

	if uid != -1 || gid != -1 {
		if err := os.Chown(path, uid, gid); err != nil {
			return fmt.Errorf("%w: %w", errChownSocket, err)
		}
	}

	if err := os.Chmod(path, basic.UnixSocketPermissions); err != nil {
		return fmt.Errorf("%w: %w", errChmodSocket, err)
	}

	return nil
}

// lookupID resolves a numeric ID or a name. Empty means "leave unchanged"
// and yields -1, as os.Chown expects.
func lookupID(value string, byName func(string) (string, error)) (int, error) {
	if value == "" {
		return -1, nil
	}

	if id, err := strconv.Atoi(value); err == nil {
		return id, nil
	}

	raw, err := byName(value)
	if err != nil {
		return -1, fmt.Errorf("failed to look up %q: %w", value, err)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return -1, fmt.Errorf("non-numeric ID %q for %q: %w", raw, value, err)
	}

	return id, nil
}
