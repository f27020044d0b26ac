package validation

import (
	"fmt"
	"strconv"
	"strings"

	"starter-pack-quiz/internal/domain"
	"starter-pack-quiz/internal/dto"
)

// Validator checks submission payloads against the trusted question bank.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubmission checks a submit payload fail-fast: the first failure
// is returned and names the offending 1-based question where applicable.
// On success it returns the coerced answer indices and item names.
func (v *Validator) ValidateSubmission(req *dto.SubmitRequest) ([]int, []string, *domain.DomainError) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, nil, domain.NewValidationError("Username is required")
	}

	if len(req.Answers) != domain.TotalQuestions {
		return nil, nil, domain.NewValidationError(
			fmt.Sprintf("Expected %d answers", domain.TotalQuestions))
	}

	answers := make([]int, 0, domain.TotalQuestions)
	for i, raw := range req.Answers {
		idx, ok := CoerceAnswerIndex(raw, domain.MaxOptionIndex)
		if !ok {
			return nil, nil, domain.NewValidationError(
				fmt.Sprintf("Invalid answer for question %d", i+1))
		}
		answers = append(answers, idx)
	}

	if len(req.Items) != domain.TotalQuestions {
		return nil, nil, domain.NewValidationError("Invalid items data")
	}

	items := make([]string, 0, domain.TotalQuestions)
	for _, raw := range req.Items {
		items = append(items, Sanitize(fmt.Sprint(raw), MaxItemNameLen))
	}

	return answers, items, nil
}

// CoerceAnswerIndex parses an answer value as an integer in [0, max].
// JSON numbers arrive as float64 and are truncated toward zero; numeric
// strings are accepted too. Anything else is invalid.
func CoerceAnswerIndex(value any, max int) (int, bool) {
	var num int
	switch x := value.(type) {
	case float64:
		num = int(x)
	case int:
		num = x
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		num = n
	default:
		return 0, false
	}

	if num < 0 || num > max {
		return 0, false
	}
	return num, true
}

// CleanPersonalityType validates a type code against the trait alphabet,
// falling back to empty rather than rejecting the submission.
func CleanPersonalityType(code string) string {
	if t, ok := domain.ParseTrait(code); ok {
		return string(t)
	}
	return ""
}

// CleanScores clamps every trait counter to [0, 99]; non-numeric or
// missing values become 0.
func CleanScores(raw map[string]any) domain.TraitScores {
	var scores domain.TraitScores
	for _, t := range domain.TraitOrder {
		n := coerceScore(raw[string(t)])
		if n < 0 {
			n = 0
		} else if n > 99 {
			n = 99
		}
		switch t {
		case domain.TraitChallenger:
			scores.C = n
		case domain.TraitPlanner:
			scores.P = n
		case domain.TraitFreeSpirit:
			scores.F = n
		case domain.TraitLoyalist:
			scores.L = n
		}
	}
	return scores
}

func coerceScore(value any) int {
	switch x := value.(type) {
	case float64:
		return int(x)
	case int:
		return x
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n
		}
	}
	return 0
}
