package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stockscope",
	Short: "stockscope - multi-factor equity scoring",
	Long: `stockscope Unified CLI

펀더멘털/밸류에이션/기술적/리스크 점수로 종목을 평가하고
Buy/Hold/Avoid 추천과 근거를 생성합니다.

Usage:
  go run ./cmd/stockscope [command]

Examples:
  go run ./cmd/stockscope api
  go run ./cmd/stockscope analyze AAPL
  go run ./cmd/stockscope screen AAPL MSFT NVDA --top 2
  go run ./cmd/stockscope picks --top 5
  go run ./cmd/stockscope scheduler start`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of tables")
}
