package leaderboard

import (
	"time"

	"github.com/ytget/schulte-grid/internal/model"
)

// Scorer maps a completion time to its tier
type Scorer func(time.Duration) model.Tier

// Row is one displayed leaderboard line
type Row struct {
	Rank      int // 1-based
	Duration  string
	TierKey   string
	TierLabel string
}

// View is the display model of the leaderboard
type View struct {
	Rows        []Row
	Placeholder string // set only when there are no rows
}

// Render builds the display model for records, which must already be sorted.
// A nil scorer falls back to model.TierFor.
func Render(records []model.Record, scorer Scorer, emptyText string) View {
	if len(records) == 0 {
		return View{Placeholder: emptyText}
	}
	if scorer == nil {
		scorer = model.TierFor
	}

	rows := make([]Row, 0, len(records))
	for i, r := range records {
		tier := scorer(r.Duration())
		rows = append(rows, Row{
			Rank:      i + 1,
			Duration:  model.FormatDuration(r.DurationMs),
			TierKey:   tier.Key,
			TierLabel: tier.Label,
		})
	}
	return View{Rows: rows}
}
