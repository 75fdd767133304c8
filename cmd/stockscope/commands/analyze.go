package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wonny/stockscope/internal/contracts"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [ticker]",
	Short: "단일 종목 분석",
	Long: `한 종목의 펀더멘털/밸류에이션/기술적/리스크 지표와
점수, 추천, 근거를 출력합니다.

Example:
  go run ./cmd/stockscope analyze AAPL
  go run ./cmd/stockscope analyze msft --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	svc, err := newServices(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := svc.analyzer.Analyze(cmd.Context(), args[0])
	if err != nil {
		PrintError(err.Error())
		return err
	}

	if jsonOutput {
		return PrintJSON(result)
	}
	printAnalysis(result)
	return nil
}

func printAnalysis(r *contracts.AnalysisResult) {
	PrintDoubleSeparator()
	fmt.Printf("  %s  %s\n", r.Ticker, r.CompanyName)
	PrintSeparator()
	PrintKeyValue("Sector", optStr(r.Sector), 14)
	PrintKeyValue("Industry", optStr(r.Industry), 14)
	PrintKeyValue("Price", optNum(r.Valuation.CurrentPrice, 2), 14)
	PrintKeyValue("As of", r.LastUpdated.Format("2006-01-02 15:04"), 14)

	fmt.Println()
	fmt.Println("  Scores")
	s := r.Scoring
	PrintKeyValue("Fundamentals", fmt.Sprintf("%.2f / 40", s.FundamentalsScore), 14)
	PrintKeyValue("Valuation", fmt.Sprintf("%.2f / 30", s.ValuationScore), 14)
	PrintKeyValue("Technicals", fmt.Sprintf("%.2f / 20", s.TechnicalsScore), 14)
	PrintKeyValue("Risk", fmt.Sprintf("%.2f / 10", s.RiskScore), 14)
	PrintKeyValue("Total", fmt.Sprintf("%.2f / %.0f", s.TotalScore, s.MaxScore), 14)

	fmt.Println()
	fmt.Printf("  Recommendation: %s (confidence %.1f%%)\n", r.Recommendation.Action, r.Recommendation.Confidence)
	PrintList(r.Recommendation.Reasoning)

	fmt.Println()
	fmt.Println("  Insights")
	PrintList(r.Insights)

	fmt.Println()
	fmt.Println("  Why choose")
	PrintList(r.Reasoning.WhyChoose)
	fmt.Println("  Why avoid")
	PrintList(r.Reasoning.WhyAvoid)

	if len(r.Reasoning.KeyMetrics) > 0 {
		fmt.Println()
		fmt.Println("  Key metrics")
		keys := make([]string, 0, len(r.Reasoning.KeyMetrics))
		for k := range r.Reasoning.KeyMetrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			PrintKeyValue(k, r.Reasoning.KeyMetrics[k], 14)
		}
	}
	PrintDoubleSeparator()
}
