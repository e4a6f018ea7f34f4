package dashboard

import (
	"time"

	"github.com/username/workday-tracker/internal/workday"
	"github.com/username/workday-tracker/pkg/dateutil"
	"github.com/username/workday-tracker/pkg/hours"
)

// CellInfo is one classified calendar cell.
type CellInfo struct {
	Date        time.Time
	Status      workday.CellStatus
	PlanHours   float64
	ActualHours float64
	Flex        float64
	DayType     workday.DayType
}

// MonthInfo is the aggregate dashboard state for one month of workdays.
type MonthInfo struct {
	Year  int
	Month time.Month

	White int
	Grey  int
	Green int
	Red   int

	PlanHours   float64
	ActualHours float64

	// FlexStart and FlexEnd bound the month's balance movement.
	FlexStart float64
	FlexEnd   float64

	Cells []CellInfo
}

// BuildMonth classifies a month of entries into calendar cells and aggregates
// the month's hours and flex movement. Entries must be consecutive and sorted
// by date; days missing from the input count as white cells. The flex chain
// is recomputed across the window, seeded by the first entry's opening
// balance.
func BuildMonth(year int, month time.Month, entries []*workday.Entry) *MonthInfo {
	info := &MonthInfo{Year: year, Month: month}

	workday.ChainFlex(entries)

	byDay := make(map[int]*workday.Entry, len(entries))
	for _, e := range entries {
		if e.Date.Year() == year && e.Date.Month() == month {
			byDay[e.Date.Day()] = e
		}
	}

	if len(entries) > 0 {
		info.FlexStart = entries[0].SumFlexStart
		info.FlexEnd = entries[len(entries)-1].SumFlexEnd
	}

	days := dateutil.DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		entry, ok := byDay[day]
		if !ok {
			info.Cells = append(info.Cells, CellInfo{Date: date, Status: workday.StatusWhite})
			info.White++
			continue
		}

		status := workday.Classify(entry)
		info.Cells = append(info.Cells, CellInfo{
			Date:        date,
			Status:      status,
			PlanHours:   entry.PlanHours,
			ActualHours: entry.ActualHours,
			Flex:        workday.TodaysFlex(entry),
			DayType:     entry.DayType,
		})

		switch status {
		case workday.StatusWhite:
			info.White++
		case workday.StatusGrey:
			info.Grey++
		case workday.StatusGreen:
			info.Green++
		case workday.StatusRed:
			info.Red++
		}

		info.PlanHours = hours.Round2(info.PlanHours + entry.PlanHours)
		info.ActualHours = hours.Round2(info.ActualHours + entry.ActualHours)
	}

	return info
}
