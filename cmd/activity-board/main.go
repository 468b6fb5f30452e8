// Package main запускает веб-интерфейс доски активностей
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activity-board/internal/apiclient"
	"activity-board/internal/board"
	"activity-board/internal/config"
	httpapi "activity-board/internal/http"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Чтение конфигурации из ENV и .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	// 1. Клиент API активностей
	api, err := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	if err != nil {
		log.Fatalf("failed to init activities client: %v", err)
	}

	// 2. Сессии: у каждого браузера своя доска
	sessions := httpapi.NewSessionStore(func(view board.View, confirm board.Confirmer) *board.Board {
		return board.New(api, view, confirm,
			board.WithLogger(logger),
			board.WithBannerDelay(cfg.BannerTimeout),
		)
	}, cfg.SessionTTL, logger)
	defer sessions.Close()

	if cfg.SessionTTL > 0 {
		go sessions.Run(ctx, cfg.SessionTTL/2)
	}

	// 3. HTTP-обработчик
	handler := httpapi.NewHandler(sessions, logger, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("api", cfg.APIBaseURL),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
