package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/stockscope/internal/api"
	"github.com/wonny/stockscope/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /                      - Liveness
  GET  /health                - Health check
  GET  /api/analyze/{ticker}  - 단일 종목 분석
  POST /api/screen            - 종목 스크리닝 (최대 50개)
  GET  /api/daily-picks       - 오늘의 추천 종목
  GET  /api/search/{query}    - 종목 검색

Example:
  go run ./cmd/stockscope api
  go run ./cmd/stockscope api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default: PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== stockscope API Server ===")

	svc, err := newServices(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}
	defer svc.Close()

	if apiPort != "" {
		svc.cfg.Port = apiPort
	}
	log := svc.log

	log.WithFields(map[string]interface{}{
		"port":     svc.cfg.Port,
		"env":      svc.cfg.Env,
		"universe": svc.universe.Name(),
		"redis":    svc.redis.Enabled(),
	}).Info("Initializing API server")

	stockHandler := handlers.NewStockHandler(svc.analyzer, svc.screener, svc.picker, svc.yahoo, log)
	router := api.NewRouter(stockHandler, svc.cfg.AllowedOrigins, log)
	server := api.New(svc.cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", svc.cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-quit:
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
