package engine

import (
	"fmt"
	"time"

	"github.com/username/workday-tracker/internal/config"
	"github.com/username/workday-tracker/internal/dashboard"
	"github.com/username/workday-tracker/internal/wire"
	"github.com/username/workday-tracker/internal/workday"
	"github.com/username/workday-tracker/pkg/dateutil"
	"go.uber.org/zap"
)

// Manager runs the workday pipeline over backend snapshots
type Manager struct {
	config *config.Config
	logger *zap.Logger
}

// NewManager creates a new workday manager
func NewManager(cfg *config.Config, logger *zap.Logger) *Manager {
	return &Manager{
		config: cfg,
		logger: logger,
	}
}

// DayResult is the outcome of evaluating one day snapshot.
type DayResult struct {
	Entry  *workday.Entry
	Errors *workday.Result
}

// EvaluateDay decodes one snapshot and runs the full recompute pipeline
// against the site's weekly configuration.
func (m *Manager) EvaluateDay(record *wire.WorkdayRecord, site string) (*DayResult, error) {
	entry, err := wire.Decode(record)
	if err != nil {
		return nil, fmt.Errorf("failed to decode workday record: %w", err)
	}

	weekly := m.config.WeeklyConfig(site)
	result := workday.Recompute(entry, weekly)

	m.logger.Info("Day evaluated",
		zap.Time("date", entry.Date),
		zap.String("site", site),
		zap.Float64("plan_hours", entry.PlanHours),
		zap.Float64("actual_hours", entry.ActualHours),
		zap.Float64("flex_end", entry.SumFlexEnd),
		zap.String("status", entry.Status.String()),
		zap.Int("error_count", result.Count()),
		zap.Bool("savable", result.CanSave()))

	return &DayResult{Entry: entry, Errors: result}, nil
}

// EvaluateWindow decodes a consecutive window of snapshots, recomputes each
// day, and chains the flex ledger so that every day's closing balance feeds
// the next day's opening balance.
func (m *Manager) EvaluateWindow(records []*wire.WorkdayRecord, site string) ([]*DayResult, error) {
	m.logger.Info("Evaluating window",
		zap.String("site", site),
		zap.Int("days", len(records)))

	weekly := m.config.WeeklyConfig(site)

	results := make([]*DayResult, 0, len(records))
	entries := make([]*workday.Entry, 0, len(records))

	for _, record := range records {
		entry, err := wire.Decode(record)
		if err != nil {
			return nil, fmt.Errorf("failed to decode record for %s: %w", record.Date, err)
		}

		result := workday.Recompute(entry, weekly)
		if !result.CanSave() {
			m.logger.Warn("Day has validation errors",
				zap.Time("date", entry.Date),
				zap.Int("error_count", result.Count()))
		}

		results = append(results, &DayResult{Entry: entry, Errors: result})
		entries = append(entries, entry)
	}

	workday.ChainFlex(entries)

	m.logger.Info("Window evaluated",
		zap.Int("days", len(entries)))

	return results, nil
}

// SuggestBreak returns the auto-break suggestion for the site, weekday and
// shift length, using the site's bucket when configured and the global
// default otherwise.
func (m *Manager) SuggestBreak(site string, weekday, shiftMinutes int) int {
	rules := m.config.BreakRules(site)
	suggested := rules.SuggestedBreak(weekday, shiftMinutes)

	m.logger.Debug("Break suggested",
		zap.String("site", site),
		zap.Int("weekday", weekday),
		zap.Int("shift_minutes", shiftMinutes),
		zap.Int("break_minutes", suggested))

	return suggested
}

// CopyBreakSettings materializes the global default bucket into the site
// layer for the weekday and returns the effective bucket.
func (m *Manager) CopyBreakSettings(site string, weekday int) workday.Bucket {
	rules := m.config.BreakRules(site)
	bucket := rules.CopyFromGlobal(weekday)

	m.logger.Info("Break settings copied from global",
		zap.String("site", site),
		zap.Int("weekday", weekday),
		zap.Int("divider", bucket.Divider),
		zap.Int("per_divider", bucket.PerDivider),
		zap.Int("upper_limit", bucket.UpperLimit))

	return bucket
}

// MonthStatus builds the dashboard overview for one month of snapshots.
func (m *Manager) MonthStatus(year int, month time.Month, records []*wire.WorkdayRecord, site string) (*dashboard.MonthInfo, error) {
	results, err := m.EvaluateWindow(records, site)
	if err != nil {
		return nil, err
	}

	entries := make([]*workday.Entry, 0, len(results))
	for _, r := range results {
		entries = append(entries, r.Entry)
	}

	info := dashboard.BuildMonth(year, month, entries)

	m.logger.Info("Month status built",
		zap.Int("year", year),
		zap.String("month", month.String()),
		zap.Int("white", info.White),
		zap.Int("grey", info.Grey),
		zap.Int("green", info.Green),
		zap.Int("red", info.Red),
		zap.Float64("flex_end", info.FlexEnd))

	return info, nil
}

// DefaultPlanHours returns the site's configured plan hours for the date's
// weekday, used to pre-fill a fresh day dialog.
func (m *Manager) DefaultPlanHours(site string, date time.Time) float64 {
	weekly := m.config.WeeklyConfig(site)
	return weekly.DefaultPlanHours[dateutil.WeekdayIndex(date)]
}
