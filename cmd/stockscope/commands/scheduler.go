package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/stockscope/internal/scheduler"
	"github.com/wonny/stockscope/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 관리",
	Long: `스케줄러를 시작하거나 작업을 관리합니다.

Subcommands:
  start   - 스케줄러 시작
  list    - 등록된 작업 목록
  run     - 특정 작업 즉시 실행

Example:
  go run ./cmd/stockscope scheduler start
  go run ./cmd/stockscope scheduler list
  go run ./cmd/stockscope scheduler run daily_picks`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "스케줄러 시작",
		Long: `스케줄러를 시작하고 등록된 모든 작업을 스케줄합니다.

등록되는 작업:
- universe_check: 평일 16:00 (유니버스 확인)
- daily_picks: PICKS_SCHEDULE (기본 평일 16:30, 추천 종목 생성)

스케줄러는 Ctrl+C로 종료할 수 있습니다.`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "등록된 작업 목록",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "특정 작업 즉시 실행 (완료까지 대기)",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== stockscope Scheduler ===")

	sched, picksJob, closeFn, err := initScheduler(cmd.Context(), os.Stdout)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer closeFn()

	sched.Start()

	fmt.Println("\n✅ Scheduler started successfully")
	fmt.Println("\nRegistered jobs:")
	printJobs(sched)
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()

	if last := picksJob.Last(); last != nil {
		PrintInfo(fmt.Sprintf("Last daily picks: %s (%d picks)", last.Date, len(last.Results)))
	}
	fmt.Println("Scheduler stopped")

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	sched, _, closeFn, err := initScheduler(cmd.Context(), io.Discard)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer closeFn()

	fmt.Println("Registered jobs:")
	printJobs(sched)

	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	sched, picksJob, closeFn, err := initScheduler(cmd.Context(), os.Stderr)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer closeFn()

	fmt.Printf("Running job: %s\n", jobName)

	result, err := sched.RunJobSync(cmd.Context(), jobName)
	if err != nil {
		PrintError(err.Error())
		return err
	}

	PrintSuccess(fmt.Sprintf("Job %s completed in %.2fs", jobName, result.Duration.Seconds()))

	if jobName == picksJob.Name() && picksJob.Last() != nil {
		if jsonOutput {
			return PrintJSON(picksJob.Last())
		}
		printPicks(picksJob.Last())
	}
	return nil
}

func printJobs(sched *scheduler.Scheduler) {
	stats := sched.GetJobStats()
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %-16s %s\n", jobName, stats[jobName].Schedule)
	}
}

func initScheduler(ctx context.Context, logOut io.Writer) (*scheduler.Scheduler, *jobs.DailyPicksJob, func(), error) {
	svc, err := newServices(ctx, logOut)
	if err != nil {
		return nil, nil, nil, err
	}

	sched := scheduler.New(svc.log, scheduler.DefaultOptions())

	picksJob := jobs.NewDailyPicksJob(svc.picker, svc.cfg.Picks.Schedule, svc.cfg.Picks.TopN, svc.log)
	for _, job := range []scheduler.Job{
		jobs.NewUniverseCheckJob(svc.universe, svc.log),
		picksJob,
	} {
		if err := sched.AddJob(job); err != nil {
			svc.Close()
			return nil, nil, nil, err
		}
	}

	return sched, picksJob, svc.Close, nil
}
