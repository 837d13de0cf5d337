package topic

// Tier represents a question difficulty tier.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// AllTiers returns the tiers in ascending difficulty order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// Value maps a tier onto the 1-10 difficulty scale used for distance
// calculations: easy=3, medium=6, hard=9. Unknown tiers map to medium.
func (t Tier) Value() float64 {
	switch t {
	case TierEasy:
		return 3
	case TierMedium:
		return 6
	case TierHard:
		return 9
	default:
		return 6
	}
}

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// ParseTier converts a string into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", &NotFoundError{Kind: "tier", ID: s}
	}
	return t, nil
}

// TiersForLevel derives the eligible tier set from a proficiency level.
// Low levels stay on easy material, the middle band mixes easy and medium,
// and strong learners drop easy questions entirely.
func TiersForLevel(level float64) []Tier {
	switch {
	case level <= 3:
		return []Tier{TierEasy}
	case level <= 6:
		return []Tier{TierEasy, TierMedium}
	default:
		return []Tier{TierMedium, TierHard}
	}
}
