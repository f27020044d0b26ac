package domain

// Trait is one of the four personality trait codes an answer option may
// carry. The alphabet is closed: anything outside C/P/F/L is not a trait.
type Trait string

const (
	TraitChallenger Trait = "C"
	TraitPlanner    Trait = "P"
	TraitFreeSpirit Trait = "F"
	TraitLoyalist   Trait = "L"

	// TraitNone marks an option that does not contribute to scoring.
	TraitNone Trait = ""
)

// TraitOrder is the fixed iteration order used everywhere traits are
// enumerated: result resolution, score clamping, export columns.
var TraitOrder = [4]Trait{TraitChallenger, TraitPlanner, TraitFreeSpirit, TraitLoyalist}

// ParseTrait returns the trait for a short code, or TraitNone and false
// when the code is not part of the alphabet.
func ParseTrait(code string) (Trait, bool) {
	switch Trait(code) {
	case TraitChallenger, TraitPlanner, TraitFreeSpirit, TraitLoyalist:
		return Trait(code), true
	}
	return TraitNone, false
}

// Reward is the themed flavor content revealed after an answer is chosen.
type Reward struct {
	Name  string `json:"name"`
	Desc  string `json:"desc"`
	Image string `json:"img"`
	Bonus string `json:"bonus,omitempty"`
}

// QuestionKind is the closed variant over a question's content shape,
// resolved once per question instead of checked ad hoc at each step.
type QuestionKind int

const (
	// KindPlain has no sub-question; selecting an option scores directly.
	KindPlain QuestionKind = iota
	// KindSharedSub shows one sub-question regardless of which parent
	// option was picked; its card image is indexed by the parent option.
	KindSharedSub
	// KindPerOptionSub shows an independent sub-question per parent option.
	KindPerOptionSub
)

// SubQuestion is a second-level question shown before scoring. It has the
// same shape as Question minus further nesting.
type SubQuestion struct {
	Text         string
	Prompt       string
	Options      []string
	OptionEmojis []string
	// Images holds per-parent-option card emojis for shared sub-questions.
	Images  []string
	Rewards []Reward
	Traits  []Trait
}

// Question is one top-level entry of the quiz. Options, Rewards and (when
// present) Traits are parallel slices.
type Question struct {
	Text         string
	Prompt       string
	Options      []string
	OptionEmojis []string
	Rewards      []Reward
	Traits       []Trait

	// Exactly one of Shared / PerOption may be set.
	Shared    *SubQuestion
	PerOption []SubQuestion
}

// Kind resolves the content variant of the question.
func (q *Question) Kind() QuestionKind {
	switch {
	case len(q.PerOption) > 0:
		return KindPerOptionSub
	case q.Shared != nil:
		return KindSharedSub
	default:
		return KindPlain
	}
}

// SubFor returns the sub-question to show after the given parent option
// was selected, or nil for plain questions.
func (q *Question) SubFor(parentOption int) *SubQuestion {
	switch q.Kind() {
	case KindPerOptionSub:
		if parentOption < 0 || parentOption >= len(q.PerOption) {
			return nil
		}
		return &q.PerOption[parentOption]
	case KindSharedSub:
		return q.Shared
	}
	return nil
}
