package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"quackshot/logging"
	"quackshot/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	staticDir := flag.String("static", "web", "directory with the web build")
	profileDir := flag.String("profiles", "profiles", "directory for profile files")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFormat := flag.String("log-format", "json", "text or json")
	flag.Parse()

	logger := logging.New("server", *logFormat, *logLevel)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(*staticDir, *profileDir, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("listening", "addr", *addr, "static", *staticDir, "profiles", *profileDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
