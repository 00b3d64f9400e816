package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pablozramirez73/questionari-webapp/internal/api"
	"github.com/pablozramirez73/questionari-webapp/internal/config"
	"github.com/pablozramirez73/questionari-webapp/internal/logger"
	"github.com/pablozramirez73/questionari-webapp/internal/services"
	"github.com/pablozramirez73/questionari-webapp/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		zlog.Fatal("failed to open store", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer func() { _ = st.Close() }()

	handlers := api.NewHandlers(
		services.NewQuestionnaireService(st),
		services.NewEditorService(),
		services.NewAnswerService(),
		zlog,
		cfg.NoticeTTL,
	)
	router := api.SetupRouter(handlers, cfg.StaticDir)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("server listening",
			zap.String("addr", cfg.Addr),
			zap.String("env", cfg.Env),
			zap.String("db_path", cfg.DBPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}
