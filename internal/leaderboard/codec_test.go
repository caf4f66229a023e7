package leaderboard

import (
	"errors"
	"testing"

	"github.com/ytget/schulte-grid/internal/model"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantRecords []model.Record
		wantSkipped int
		wantErr     error
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "empty array",
			input: "[]",
		},
		{
			name:        "valid entries",
			input:       `[{"time":1700000000000,"duration":12345},{"time":1700000001000,"duration":9000}]`,
			wantRecords: []model.Record{{RecordedAt: 1700000000000, DurationMs: 12345}, {RecordedAt: 1700000001000, DurationMs: 9000}},
		},
		{
			name:        "malformed entries skipped",
			input:       `[{"time":1,"duration":-5},42,{"time":2},{"time":3,"duration":"fast"},{"duration":700}]`,
			wantRecords: []model.Record{{RecordedAt: 0, DurationMs: 700}},
			wantSkipped: 4,
		},
		{
			name:    "invalid json",
			input:   `[{"time":1,`,
			wantErr: ErrCorrupt,
		},
		{
			name:    "object instead of array",
			input:   `{"time":1,"duration":2}`,
			wantErr: ErrCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, skipped, err := Decode([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, expected %v", err, tt.wantErr)
			}
			if skipped != tt.wantSkipped {
				t.Errorf("Decode() skipped = %d, expected %d", skipped, tt.wantSkipped)
			}
			if len(records) != len(tt.wantRecords) {
				t.Fatalf("Decode() = %v, expected %v", records, tt.wantRecords)
			}
			for i := range records {
				if records[i] != tt.wantRecords[i] {
					t.Errorf("record %d = %+v, expected %+v", i, records[i], tt.wantRecords[i])
				}
			}
		})
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Encode(nil) = %s, expected []", data)
	}

	data, err = Encode([]model.Record{{RecordedAt: 1700000000000, DurationMs: 9000}, {RecordedAt: 5, DurationMs: 12000}})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	expected := `[{"time":1700000000000,"duration":9000},{"time":5,"duration":12000}]`
	if string(data) != expected {
		t.Errorf("Encode() = %s, expected %s", data, expected)
	}
}
