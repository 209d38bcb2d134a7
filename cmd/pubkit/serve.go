package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strconv"

	"github.com/alnah/go-pubkit/internal/hints"
	"github.com/alnah/go-pubkit/internal/server"
)

// runServe serves a directory until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	env.NoColor = env.NoColor || f.common.noColor

	if len(positional) > 0 {
		printServeUsage(env.Stderr)
		return fmt.Errorf("%w: serve takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(f.common.config, env)
	if err != nil {
		return err
	}
	if f.dir != "" {
		cfg.Serve.Dir = f.dir
	}
	if f.host != "" {
		cfg.Serve.Host = f.host
	}
	if f.port != 0 {
		cfg.Serve.Port = f.port
	}
	if f.attempts != 0 {
		cfg.Serve.Attempts = f.attempts
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var logOut io.Writer = env.Stderr
	if f.common.quiet {
		logOut = io.Discard
	}

	srv, err := server.New(server.Config{
		Dir:      cfg.Serve.Dir,
		Host:     cfg.Serve.Host,
		Port:     cfg.Serve.Port,
		Attempts: cfg.Serve.Attempts,
		Logger:   log.New(logOut, "", log.LstdFlags),
	})
	if err != nil {
		return err
	}

	ln, err := srv.Listen(ctx)
	if errors.Is(err, server.ErrNoAvailablePort) {
		last := cfg.Serve.Port + cfg.Serve.Attempts - 1
		return fmt.Errorf("%w%s", err, hints.ForPortsExhausted(cfg.Serve.Port, last))
	}
	if err != nil {
		return err
	}

	p := newPrinter(env.Stdout, env.NoColor, f.common)
	warn := newPrinter(env.Stderr, env.NoColor, f.common)

	port := server.Port(ln)
	if port != cfg.Serve.Port {
		warn.Warning("port %d is already in use, using %d", cfg.Serve.Port, port)
	}
	p.Info("Serving HTTP on %s port %d (%s) ...", displayHost(cfg.Serve.Host), port, serveURL(cfg.Serve.Host, port))
	p.Detail("Directory: %s", cfg.Serve.Dir)

	err = srv.Serve(ctx, ln)
	p.Info("Shutting down server...")
	return err
}

func displayHost(host string) string {
	if host == "" {
		return "all interfaces"
	}
	return host
}

// serveURL returns the address to open in a browser.
func serveURL(host string, port int) string {
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/"
}
