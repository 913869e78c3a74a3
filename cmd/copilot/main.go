package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bizcopilot/backend/internal/api"
	"github.com/bizcopilot/backend/internal/common"
	"github.com/bizcopilot/backend/internal/config"
	"github.com/bizcopilot/backend/internal/llm"
	"github.com/bizcopilot/backend/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("copilot: .env file not loaded", "error", err)
	} else {
		logger.Info("copilot: environment loaded from .env")
	}

	addr := flag.String("addr", "", "listen address (overrides COPILOT_ADDR)")
	dbPath := flag.String("db", "", "path to the SQLite database (overrides DATABASE_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("copilot: config load failed", "error", err)
		fmt.Println("config error:", err)
		os.Exit(1)
	}
	if trimmed := strings.TrimSpace(*addr); trimmed != "" {
		cfg.Addr = trimmed
	}
	if trimmed := strings.TrimSpace(*dbPath); trimmed != "" {
		cfg.DatabasePath = trimmed
	}

	logger.Info("copilot: startup initiated",
		"addr", cfg.Addr,
		"provider", cfg.LLMProvider,
		"model", cfg.LLMModel,
		"db", cfg.DatabasePath,
		"save_history", cfg.SaveHistory,
	)

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("copilot: store open failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer st.Close()
	logger.Info("copilot: database ready", "path", cfg.DatabasePath)

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		logger.Error("copilot: llm provider init failed", "error", err)
		fmt.Println("llm provider error:", err)
		os.Exit(1)
	}
	gateway := llm.NewGateway(provider, cfg.LLMTimeout)
	defer gateway.Close()
	logger.Info("copilot: llm provider ready", "provider", gateway.ProviderName())

	server := api.NewServer(cfg, gateway, st)

	httpServer := &http.Server{Addr: cfg.Addr, Handler: server}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("copilot: server listening", "addr", cfg.Addr, "health", "/api/health")
		fmt.Printf("Serving on %s\n", cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("copilot: shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("copilot: shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("copilot: server stopped", "error", err)
			fmt.Println("server stopped:", err)
		}
	}
	logger.Info("copilot: shutdown complete")
}
