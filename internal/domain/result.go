package domain

// TraitScores holds the accumulated counters for the four traits. A struct
// rather than a map so an unrecognized key cannot exist at runtime.
type TraitScores struct {
	C int `json:"C"`
	P int `json:"P"`
	F int `json:"F"`
	L int `json:"L"`
}

// Get returns the counter for a trait. TraitNone is always 0.
func (s TraitScores) Get(t Trait) int {
	switch t {
	case TraitChallenger:
		return s.C
	case TraitPlanner:
		return s.P
	case TraitFreeSpirit:
		return s.F
	case TraitLoyalist:
		return s.L
	}
	return 0
}

// Add increments the counter for a trait. TraitNone is a no-op.
func (s *TraitScores) Add(t Trait) {
	switch t {
	case TraitChallenger:
		s.C++
	case TraitPlanner:
		s.P++
	case TraitFreeSpirit:
		s.F++
	case TraitLoyalist:
		s.L++
	}
}

// PersonalityResult is one of the four themed quiz outcomes.
type PersonalityResult struct {
	Title     string
	Desc      string
	Emoji     string
	ItemLabel string
	ItemName  string
	ItemDesc  string
	ItemEmoji string
}

// ResolvePersonality maps final trait counters to the dominant trait.
// Traits are scanned in TraitOrder with a strictly-greater comparison, so
// the first trait in the order wins all ties, including the all-zero case.
func ResolvePersonality(scores TraitScores) Trait {
	maxTrait := TraitOrder[0]
	maxCount := 0
	for _, t := range TraitOrder {
		if scores.Get(t) > maxCount {
			maxCount = scores.Get(t)
			maxTrait = t
		}
	}
	return maxTrait
}
