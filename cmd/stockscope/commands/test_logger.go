package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/stockscope/pkg/config"
	"github.com/wonny/stockscope/pkg/logger"
)

// testLoggerCmd represents the test-logger command
var testLoggerCmd = &cobra.Command{
	Use:   "test-logger",
	Short: "Logger 기능 테스트",
	Long: `구조화된 로깅 기능을 테스트합니다.

이 명령어는:
- JSON/Console 포맷 테스트
- 구조화된 필드 로깅
- 에러 컨텍스트 로깅

Example:
  go run ./cmd/stockscope test-logger`,
	RunE: runTestLogger,
}

func init() {
	rootCmd.AddCommand(testLoggerCmd)
}

func runTestLogger(cmd *cobra.Command, args []string) error {
	fmt.Println("=== stockscope Logger Test ===")

	fmt.Println("1. JSON Format (Production)")
	PrintSeparator()
	jsonLog := logger.New(&config.Config{Env: "production", LogLevel: "info", LogFormat: "json"})
	jsonLog.Info("Service started")
	jsonLog.Warn("Provider rate limit close to exhaustion")
	fmt.Println()

	fmt.Println("2. Console Format (Development)")
	PrintSeparator()
	consoleLog := logger.New(&config.Config{Env: "development", LogLevel: "debug", LogFormat: "console"})
	consoleLog.Debug("Debugging scoring flow")
	consoleLog.Info("Request received from client")
	fmt.Println()

	fmt.Println("3. Structured Logging with Fields")
	PrintSeparator()
	jsonLog.WithTicker("AAPL").WithFields(map[string]interface{}{
		"total_score":    78.4,
		"recommendation": "Buy",
	}).Info("Analysis complete")
	jsonLog.WithField("module", "screener").
		WithField("workers", 8).
		Info("Screening started")
	fmt.Println()

	fmt.Println("4. Error Logging")
	PrintSeparator()
	err := errors.New("connection timeout")
	jsonLog.WithError(err).
		WithFields(map[string]interface{}{
			"retry_count": 2,
			"endpoint":    "/v8/finance/chart/AAPL",
		}).
		Error("Provider request failed after retries")
	fmt.Println()

	PrintSuccess("All logger tests completed!")
	return nil
}
