package leaderboard

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ytget/schulte-grid/internal/model"
)

// ErrCorrupt is returned by Decode when the stored value is not a JSON array
var ErrCorrupt = errors.New("leaderboard data is not a JSON array")

// Decode parses a persisted leaderboard. Entries that are not objects or lack
// a non-negative numeric duration are skipped and counted. A missing time
// stamp decodes as zero.
func Decode(data []byte) (records []model.Record, skipped int, err error) {
	if len(data) == 0 {
		return nil, 0, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, 0, ErrCorrupt
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, 0, ErrCorrupt
	}

	root.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			skipped++
			return true
		}
		dur := v.Get("duration")
		if dur.Type != gjson.Number || dur.Num < 0 {
			skipped++
			return true
		}
		rec := model.Record{DurationMs: dur.Int()}
		if ts := v.Get("time"); ts.Type == gjson.Number {
			rec.RecordedAt = ts.Int()
		}
		records = append(records, rec)
		return true
	})
	return records, skipped, nil
}

// Encode serializes records as a JSON array of {"time","duration"} objects
func Encode(records []model.Record) ([]byte, error) {
	out := []byte("[]")
	for i, r := range records {
		entry, err := sjson.SetBytes([]byte("{}"), "time", r.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("encode record %d time: %w", i, err)
		}
		entry, err = sjson.SetBytes(entry, "duration", r.DurationMs)
		if err != nil {
			return nil, fmt.Errorf("encode record %d duration: %w", i, err)
		}
		out, err = sjson.SetRawBytes(out, "-1", entry)
		if err != nil {
			return nil, fmt.Errorf("append record %d: %w", i, err)
		}
	}
	return out, nil
}
