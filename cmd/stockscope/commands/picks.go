package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/stockscope/internal/contracts"
)

// picksCmd represents the picks command
var picksCmd = &cobra.Command{
	Use:   "picks",
	Short: "오늘의 추천 종목",
	Long: `유니버스 전체를 스크리닝해 상위 N개 종목과
선택/회피 근거를 출력합니다. (PICKS_UNIVERSE: static, file, sp500)

Example:
  go run ./cmd/stockscope picks
  go run ./cmd/stockscope picks --top 5`,
	RunE: runPicks,
}

var (
	picksTop int
)

func init() {
	rootCmd.AddCommand(picksCmd)

	picksCmd.Flags().IntVar(&picksTop, "top", 0, "상위 N개 (default: PICKS_TOP_N)")
}

func runPicks(cmd *cobra.Command, args []string) error {
	svc, err := newServices(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}
	defer svc.Close()

	report, err := svc.picker.Generate(cmd.Context(), picksTop)
	if err != nil {
		PrintError(err.Error())
		return err
	}

	if jsonOutput {
		return PrintJSON(report)
	}
	printPicks(report)
	return nil
}

func printPicks(report *contracts.DailyPicksReport) {
	PrintDoubleSeparator()
	fmt.Printf("  Daily picks %s  (%d analyzed)\n", report.Date, report.TotalAnalyzed)
	PrintSeparator()

	results := make([]contracts.ScreenResult, len(report.Results))
	for i, p := range report.Results {
		results[i] = p.ScreenResult
	}
	printScreenTable(results)

	for i, p := range report.Results {
		fmt.Println()
		fmt.Printf("  %d. %s (%s)\n", i+1, p.Ticker, p.Recommendation)
		fmt.Println("   Why choose:")
		PrintList(p.WhyChoose)
		fmt.Println("   Why avoid:")
		PrintList(p.WhyAvoid)
	}
	PrintDoubleSeparator()
}
