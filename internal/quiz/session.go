// Package quiz implements the quiz-taking engine: an explicit session
// state machine, the scoring resolver, and the submission client. It has
// no UI dependencies so the whole flow is unit-testable.
package quiz

import (
	"errors"
	"strings"

	"starter-pack-quiz/internal/domain"
)

// State is the screen the session is currently on.
type State int

const (
	StateCover State = iota
	StateQuestion
	StateSubQuestion
	StateReveal
	StateSummary
	StateSuggestion
	StateFinal
)

// maxNameLen is the silent truncation bound for the player name.
const maxNameLen = 30

var (
	ErrNameRequired     = errors.New("quiz: name is required")
	ErrWrongState       = errors.New("quiz: operation not valid in current state")
	ErrOptionOutOfRange = errors.New("quiz: option index out of range")
	ErrSubmitInProgress = errors.New("quiz: submission already in progress")
)

// Session holds all mutable quiz-taking state. A fresh Session is built
// per quiz run; nothing lives in package scope.
type Session struct {
	questions []domain.Question

	state    State
	username string
	current  int

	inSub        bool
	activeSub    *domain.SubQuestion
	parentOption int

	answers []int
	items   []domain.Reward
	scores  domain.TraitScores

	submitting bool
}

// NewSession creates a session over the standard question bank.
func NewSession() *Session {
	return NewSessionWith(domain.Questions)
}

// NewSessionWith creates a session over a custom bank (used by tests).
func NewSessionWith(questions []domain.Question) *Session {
	return &Session{questions: questions, parentOption: -1}
}

// Start validates the player name and enters the first question. An empty
// trimmed name is rejected; an over-length one is truncated silently. All
// accumulators reset, so Start doubles as a restart.
func (s *Session) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}

	s.username = name
	s.current = 0
	s.answers = nil
	s.items = nil
	s.scores = domain.TraitScores{}
	s.resetSubState()
	s.state = StateQuestion
	return nil
}

// Select records the player's choice on the active question. On a
// question that declares sub-question content it descends into the
// sub-question without scoring; otherwise it scores exactly one answer
// for the top-level slot and moves to the reveal screen. The returned
// reward is nil when a sub-question was entered instead.
func (s *Session) Select(option int) (*domain.Reward, error) {
	if s.state != StateQuestion && s.state != StateSubQuestion {
		return nil, ErrWrongState
	}

	q := &s.questions[s.current]

	if !s.inSub && q.Kind() != domain.KindPlain {
		if option < 0 || option >= len(q.Options) {
			return nil, ErrOptionOutOfRange
		}
		s.inSub = true
		s.parentOption = option
		s.activeSub = q.SubFor(option)
		s.state = StateSubQuestion
		return nil, nil
	}

	// Once a sub-question exists its reward and trait arrays are
	// authoritative, not the parent's.
	options, rewards, traits := q.Options, q.Rewards, q.Traits
	if s.inSub {
		options, rewards = s.activeSub.Options, s.activeSub.Rewards
		// Single-source trait attribution: the active question's tags
		// win, the parent's apply only when the sub declares none.
		if s.activeSub.Traits != nil {
			traits = s.activeSub.Traits
		}
	}

	if option < 0 || option >= len(options) {
		return nil, ErrOptionOutOfRange
	}

	reward := rewards[option]
	s.answers = append(s.answers, option)
	s.items = append(s.items, reward)
	if option < len(traits) {
		s.scores.Add(traits[option])
	}

	s.resetSubState()
	s.state = StateReveal
	return &reward, nil
}

// Advance leaves the reveal screen: either to the next question, with any
// sub-question state cleared, or to the summary once the bank is done.
func (s *Session) Advance() error {
	if s.state != StateReveal {
		return ErrWrongState
	}
	s.current++
	s.resetSubState()
	if s.current < len(s.questions) {
		s.state = StateQuestion
	} else {
		s.state = StateSummary
	}
	return nil
}

// ToSuggestion moves from the summary to the free-text suggestion screen.
func (s *Session) ToSuggestion() error {
	if s.state != StateSummary {
		return ErrWrongState
	}
	s.state = StateSuggestion
	return nil
}

// Result resolves the dominant personality from the accumulated scores.
// Pure and replayable; safe to call at any point.
func (s *Session) Result() (domain.Trait, domain.PersonalityResult) {
	t := domain.ResolvePersonality(s.scores)
	return t, domain.Results[t]
}

// CurrentQuestion returns the active top-level question.
func (s *Session) CurrentQuestion() *domain.Question {
	if s.current >= len(s.questions) {
		return nil
	}
	return &s.questions[s.current]
}

// ActiveSubQuestion returns the sub-question being shown, or nil.
func (s *Session) ActiveSubQuestion() *domain.SubQuestion {
	if !s.inSub {
		return nil
	}
	return s.activeSub
}

// SubCardImage returns the card emoji for a shared sub-question, indexed
// by the parent's selected option rather than re-selected.
func (s *Session) SubCardImage() string {
	if !s.inSub || s.activeSub == nil {
		return ""
	}
	if s.parentOption >= 0 && s.parentOption < len(s.activeSub.Images) {
		return s.activeSub.Images[s.parentOption]
	}
	return ""
}

func (s *Session) State() State             { return s.state }
func (s *Session) Username() string         { return s.username }
func (s *Session) QuestionIndex() int       { return s.current }
func (s *Session) Answers() []int           { return s.answers }
func (s *Session) Items() []domain.Reward   { return s.items }
func (s *Session) Scores() domain.TraitScores { return s.scores }
func (s *Session) Submitting() bool         { return s.submitting }

func (s *Session) resetSubState() {
	s.inSub = false
	s.activeSub = nil
	s.parentOption = -1
}
