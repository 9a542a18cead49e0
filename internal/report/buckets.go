package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/ledger"
	"github.com/HarshadSelokar/campus-budget-buddy-app/internal/types"
	"github.com/shopspring/decimal"
)

// Granularity is the calendar unit used to bucket expenses over time.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

var ErrGranularityInvalid = fmt.Errorf("the granularity must be one of day, week or month")

// ParseGranularity parses a granularity string. An empty string defaults
// to daily buckets.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return GranularityDay, nil
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrGranularityInvalid, s)
}

// BucketTotal is the total spent in one time bucket.
type BucketTotal struct {
	Label string          `json:"label" example:"2024-01"`                 // Human-readable bucket label
	Start time.Time       `json:"start" example:"2024-01-01T00:00:00Z"`    // First instant of the bucket
	Total decimal.Decimal `json:"total" example:"50.25"`                   // Sum of all expenses in the bucket
}

// GroupByDateBucket buckets the snapshot's expenses by calendar granularity.
//
// The result is ordered chronologically ascending. Sorting uses the bucket
// start date, never the label, so that formatted labels cannot reorder the
// series. Expenses without a usable date are excluded.
func GroupByDateBucket(snapshot ledger.Snapshot, granularity Granularity) []BucketTotal {
	totals := make(map[time.Time]decimal.Decimal)
	labels := make(map[time.Time]string)

	for _, expense := range snapshot.Expenses {
		if expense.Date.IsZero() {
			continue
		}

		start, label := bucketOf(expense.Date.Time(), granularity)
		totals[start] = totals[start].Add(expense.Amount)
		labels[start] = label
	}

	buckets := make([]BucketTotal, 0, len(totals))
	for start, total := range totals {
		buckets = append(buckets, BucketTotal{
			Label: labels[start],
			Start: start,
			Total: total,
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})

	return buckets
}

// bucketOf returns the start instant and label of the bucket a time
// falls into.
func bucketOf(t time.Time, granularity Granularity) (time.Time, string) {
	switch granularity {
	case GranularityWeek:
		// ISO weeks start on Monday
		offset := (int(t.Weekday()) + 6) % 7
		start := time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
		year, week := start.ISOWeek()
		return start.UTC(), fmt.Sprintf("%04d-W%02d", year, week)

	case GranularityMonth:
		month := types.MonthOf(t)
		return month.Time().UTC(), month.String()

	default:
		start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return start.UTC(), start.Format("2006-01-02")
	}
}
