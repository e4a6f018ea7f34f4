package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/workday-tracker/internal/config"
	"github.com/username/workday-tracker/internal/engine"
	"github.com/username/workday-tracker/internal/wire"
	"github.com/username/workday-tracker/internal/workday"
	"github.com/username/workday-tracker/pkg/dateutil"
	"github.com/username/workday-tracker/pkg/hours"
	"github.com/username/workday-tracker/pkg/timeenc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workday-tracker",
		Short: "Workday time calculation and validation engine",
		Long:  "Evaluate workday snapshots: plan and actual hours, flex balance, validation errors, and dashboard statuses",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Logging.File != "" {
				logger, err = initFileLogger(cfg.Logging.File, cfg.Logging.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(flexCmd())
	rootCmd.AddCommand(breaksCmd())
	rootCmd.AddCommand(statusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func evaluateCmd() *cobra.Command {
	var input string
	var site string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run the full pipeline over one day snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := initializeManager()
			if err != nil {
				return err
			}

			record, err := readRecord(input)
			if err != nil {
				return err
			}

			result, err := manager.EvaluateDay(record, site)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			entry := result.Entry
			fmt.Printf("Date:          %s\n", entry.Date.Format("2006-01-02"))
			fmt.Printf("Plan hours:    %s\n", hours.Format(entry.PlanHours))
			fmt.Printf("Actual hours:  %s\n", hours.Format(entry.ActualHours))
			fmt.Printf("Flex today:    %s\n", hours.Format(workday.TodaysFlex(entry)))
			fmt.Printf("Flex balance:  %s -> %s\n", hours.Format(entry.SumFlexStart), hours.Format(entry.SumFlexEnd))
			fmt.Printf("Status:        %s\n", entry.Status)
			if entry.DayType != workday.DayTypeNone {
				fmt.Printf("Day type:      %s\n", entry.DayType)
			}

			printErrors(result.Errors.Fields)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Day snapshot JSON file (required)")
	cmd.Flags().StringVarP(&site, "site", "s", "", "Site name from config")
	cmd.MarkFlagRequired("input")

	return cmd
}

func validateCmd() *cobra.Command {
	var input string
	var site string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a day snapshot and report every field error",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := initializeManager()
			if err != nil {
				return err
			}

			record, err := readRecord(input)
			if err != nil {
				return err
			}

			result, err := manager.EvaluateDay(record, site)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if result.Errors.CanSave() {
				fmt.Println("OK: day is savable")
				return nil
			}

			printErrors(result.Errors.Fields)
			return fmt.Errorf("day has %d validation error(s)", result.Errors.Count())
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Day snapshot JSON file (required)")
	cmd.Flags().StringVarP(&site, "site", "s", "", "Site name from config")
	cmd.MarkFlagRequired("input")

	return cmd
}

func flexCmd() *cobra.Command {
	var input string
	var site string

	cmd := &cobra.Command{
		Use:   "flex",
		Short: "Chain the flex ledger over a window of day snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := initializeManager()
			if err != nil {
				return err
			}

			records, err := readRecords(input)
			if err != nil {
				return err
			}

			results, err := manager.EvaluateWindow(records, site)
			if err != nil {
				return fmt.Errorf("window evaluation failed: %w", err)
			}

			fmt.Println("Date        Plan   Actual  Flex     Balance")
			for _, r := range results {
				e := r.Entry
				marker := ""
				if !r.Errors.CanSave() {
					marker = "  !"
				}
				fmt.Printf("%s  %5s  %5s  %7s  %7s%s\n",
					e.Date.Format("2006-01-02"),
					hours.Format(e.PlanHours),
					hours.Format(e.ActualHours),
					hours.Format(e.SumFlexEnd-e.SumFlexStart),
					hours.Format(e.SumFlexEnd),
					marker)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Window snapshot JSON file (required)")
	cmd.Flags().StringVarP(&site, "site", "s", "", "Site name from config")
	cmd.MarkFlagRequired("input")

	return cmd
}

func breaksCmd() *cobra.Command {
	var site string
	var weekday string
	var shiftText string
	var copyGlobal bool

	cmd := &cobra.Command{
		Use:   "breaks",
		Short: "Suggest auto-break minutes for a weekday and shift length",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := initializeManager()
			if err != nil {
				return err
			}

			day, ok := config.WeekdayIndex(weekday)
			if !ok {
				return fmt.Errorf("unknown weekday %q", weekday)
			}

			if copyGlobal {
				bucket := manager.CopyBreakSettings(site, day)
				fmt.Printf("Bucket for %s: every %d min adds %d min break, capped at %d min\n",
					weekday, bucket.Divider, bucket.PerDivider, bucket.UpperLimit)
				return nil
			}

			shiftMinutes, ok := timeenc.ToMinutes(shiftText)
			if !ok {
				return fmt.Errorf("invalid shift length %q, expected HH:MM", shiftText)
			}

			suggested := manager.SuggestBreak(site, day, shiftMinutes)
			fmt.Printf("Suggested break for a %s shift on %s: %d minutes\n",
				shiftText, weekday, suggested)
			return nil
		},
	}

	cmd.Flags().StringVarP(&site, "site", "s", "", "Site name from config")
	cmd.Flags().StringVarP(&weekday, "weekday", "w", "monday", "Weekday name")
	cmd.Flags().StringVarP(&shiftText, "shift", "l", "08:00", "Shift length as HH:MM")
	cmd.Flags().BoolVar(&copyGlobal, "copy-global", false, "Copy the global bucket into the site settings")

	return cmd
}

func statusCmd() *cobra.Command {
	var input string
	var site string
	var monthText string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Build the month dashboard from a window of day snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := initializeManager()
			if err != nil {
				return err
			}

			records, err := readRecords(input)
			if err != nil {
				return err
			}

			date, err := dateutil.ParseDate(monthText + "-01")
			if err != nil {
				return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", monthText, err)
			}

			info, err := manager.MonthStatus(date.Year(), date.Month(), records, site)
			if err != nil {
				return fmt.Errorf("status failed: %w", err)
			}

			fmt.Printf("Dashboard %d-%02d\n", info.Year, int(info.Month))
			fmt.Printf("  Green:  %3d  - worked and closed\n", info.Green)
			fmt.Printf("  Grey:   %3d  - planned or in progress\n", info.Grey)
			fmt.Printf("  Red:    %3d  - unplanned work in progress\n", info.Red)
			fmt.Printf("  White:  %3d  - empty days\n", info.White)
			fmt.Printf("  Plan:   %s h, actual: %s h\n",
				hours.Format(info.PlanHours), hours.Format(info.ActualHours))
			fmt.Printf("  Flex:   %s -> %s\n",
				hours.Format(info.FlexStart), hours.Format(info.FlexEnd))

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Window snapshot JSON file (required)")
	cmd.Flags().StringVarP(&site, "site", "s", "", "Site name from config")
	cmd.Flags().StringVarP(&monthText, "month", "m", time.Now().Format("2006-01"), "Month as YYYY-MM")
	cmd.MarkFlagRequired("input")

	return cmd
}

// initializeManager loads the config and builds the manager
func initializeManager() (*engine.Manager, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return engine.NewManager(cfg, logger), nil
}

func readRecord(path string) (*wire.WorkdayRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var record wire.WorkdayRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return &record, nil
}

func readRecords(path string) ([]*wire.WorkdayRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}

	var records []*wire.WorkdayRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse snapshots: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	return records, nil
}

func printErrors(fields map[string][]string) {
	if len(fields) == 0 {
		return
	}

	paths := make([]string, 0, len(fields))
	for path := range fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	fmt.Println("Validation errors:")
	for _, path := range paths {
		for _, kind := range fields[path] {
			fmt.Printf("  %-24s %s\n", path, kind)
		}
	}
}

// initLogger initializes the console logger
func initLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	var err error
	logger, err = cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
}

// initFileLogger initializes a file logger with rotation
func initFileLogger(logFile, logLevel string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if logLevel != "" {
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			level = zapcore.InfoLevel
		}
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		writer,
		level,
	)

	return zap.New(core), nil
}
