package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/vector-ops/miniredis/internal/config"
	"github.com/vector-ops/miniredis/internal/server"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")

	var listenAddr string
	flag.StringVar(&listenAddr, "listen", "", "Listen address, overrides config and env")

	var logLevel string
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ApplyOverrides(listenAddr, logLevel); err != nil {
		log.Fatal(err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.LogLevel),
	})))

	srv := server.NewServer(server.Config{ListenAddr: cfg.ListenAddr()})

	log.Fatal(srv.Start())
}
