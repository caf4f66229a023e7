package model

import "time"

// TierLevel is a performance bucket, 1 being the best
type TierLevel int

const (
	TierExcellent TierLevel = iota + 1
	TierGood
	TierMedium
	TierPass
	TierFail
)

// Tier describes a performance bucket
type Tier struct {
	Level       TierLevel
	Key         string // stable identifier, used for localization and styling
	Label       string
	Description string
}

// Tier upper bounds (exclusive)
const (
	ExcellentBelow = 10 * time.Second
	GoodBelow      = 15 * time.Second
	MediumBelow    = 25 * time.Second
	PassBelow      = 35 * time.Second
)

var tiers = [...]Tier{
	{TierExcellent, "excellent", "Excellent", "Fast visual search, highly focused attention"},
	{TierGood, "good", "Good", "Good concentration, switches targets quickly"},
	{TierMedium, "medium", "Medium", "Normal range, adequate for everyday work and study"},
	{TierPass, "pass", "Pass", "Attention slightly scattered, more training needed"},
	{TierFail, "fail", "Fail", "Short attention span, easily distracted; consider professional advice"},
}

// TierFor maps a completion duration to its performance tier
func TierFor(d time.Duration) Tier {
	switch {
	case d < ExcellentBelow:
		return tiers[0]
	case d < GoodBelow:
		return tiers[1]
	case d < MediumBelow:
		return tiers[2]
	case d < PassBelow:
		return tiers[3]
	default:
		return tiers[4]
	}
}

// Tiers returns all tiers from best to worst
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers[:])
	return out
}
