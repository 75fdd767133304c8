package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/stockscope/internal/contracts"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen [tickers...]",
	Short: "종목 스크리닝",
	Long: `여러 종목을 동시에 평가해 총점 순으로 정렬합니다.
조회에 실패한 종목은 결과에서 제외됩니다.

Example:
  go run ./cmd/stockscope screen AAPL MSFT NVDA JPM
  go run ./cmd/stockscope screen AAPL MSFT NVDA --top 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScreen,
}

var (
	screenTop int
)

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().IntVar(&screenTop, "top", 10, "상위 N개")
}

func runScreen(cmd *cobra.Command, args []string) error {
	svc, err := newServices(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}
	defer svc.Close()

	report, err := svc.screener.Screen(cmd.Context(), args, screenTop)
	if err != nil {
		PrintError(err.Error())
		return err
	}

	if jsonOutput {
		return PrintJSON(report)
	}

	PrintDoubleSeparator()
	fmt.Printf("  Screen %s  (%d analyzed, %d ranked)\n", report.Date, report.TotalAnalyzed, len(report.Results))
	PrintSeparator()
	printScreenTable(report.Results)

	if len(report.Results) == 0 {
		PrintWarning("No ticker could be evaluated")
	}
	return nil
}

var screenColumns = []string{"#", "Ticker", "Company", "Price", "Fund", "Tech", "Risk", "Total", "Action"}
var screenWidths = []int{3, 7, 28, 9, 5, 5, 5, 6, 6}

func printScreenTable(results []contracts.ScreenResult) {
	PrintTableHeader(screenColumns, screenWidths)
	for i, r := range results {
		PrintTableRow([]string{
			fmt.Sprintf("%d", i+1),
			r.Ticker,
			truncate(r.CompanyName, screenWidths[2]),
			optNum(r.CurrentPrice, 2),
			fmt.Sprintf("%.1f", r.FundamentalScore),
			fmt.Sprintf("%.1f", r.TechnicalScore),
			fmt.Sprintf("%.1f", r.RiskScore),
			fmt.Sprintf("%.2f", r.TotalScore),
			string(r.Recommendation),
		}, screenWidths)
	}
}
