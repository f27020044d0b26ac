package quiz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"starter-pack-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBank is a three-question bank exercising all content kinds.
func testBank() []domain.Question {
	return []domain.Question{
		{
			Text:    "plain",
			Options: []string{"a", "b", "c", "d"},
			Rewards: []domain.Reward{
				{Name: "RA"}, {Name: "RB"}, {Name: "RC"}, {Name: "RD"},
			},
			Traits: []domain.Trait{domain.TraitChallenger, domain.TraitPlanner, domain.TraitFreeSpirit, domain.TraitLoyalist},
		},
		{
			Text:    "shared",
			Options: []string{"p0", "p1"},
			Rewards: []domain.Reward{{Name: "PR0"}, {Name: "PR1"}},
			Traits:  []domain.Trait{domain.TraitChallenger, domain.TraitChallenger},
			Shared: &domain.SubQuestion{
				Options: []string{"s0", "s1"},
				Images:  []string{"img-a", "img-b"},
				Rewards: []domain.Reward{{Name: "SR0"}, {Name: "SR1"}},
				Traits:  []domain.Trait{domain.TraitLoyalist, domain.TraitFreeSpirit},
			},
		},
		{
			Text:    "per-option",
			Options: []string{"x", "y"},
			Rewards: []domain.Reward{{Name: "XR"}, {Name: "YR"}},
			PerOption: []domain.SubQuestion{
				{
					Options: []string{"x0", "x1"},
					Rewards: []domain.Reward{{Name: "XR0"}, {Name: "XR1"}},
					Traits:  []domain.Trait{domain.TraitPlanner, domain.TraitPlanner},
				},
				{
					Options: []string{"y0", "y1"},
					Rewards: []domain.Reward{{Name: "YR0"}, {Name: "YR1"}},
					// No traits on this sub: attribution falls back to
					// the parent's list.
				},
			},
		},
	}
}

func TestSessionStart(t *testing.T) {
	t.Run("rejects empty name", func(t *testing.T) {
		s := NewSessionWith(testBank())
		assert.ErrorIs(t, s.Start("   "), ErrNameRequired)
		assert.Equal(t, StateCover, s.State())
	})

	t.Run("truncates long names silently", func(t *testing.T) {
		s := NewSessionWith(testBank())
		require.NoError(t, s.Start(strings.Repeat("n", 45)))
		assert.Len(t, s.Username(), 30)
		assert.Equal(t, StateQuestion, s.State())
	})

	t.Run("restart resets accumulators", func(t *testing.T) {
		s := NewSessionWith(testBank())
		require.NoError(t, s.Start("one"))
		_, err := s.Select(0)
		require.NoError(t, err)

		require.NoError(t, s.Start("two"))
		assert.Empty(t, s.Answers())
		assert.Empty(t, s.Items())
		assert.Equal(t, domain.TraitScores{}, s.Scores())
		assert.Equal(t, 0, s.QuestionIndex())
	})
}

func TestSessionPlainQuestion(t *testing.T) {
	s := NewSessionWith(testBank())
	require.NoError(t, s.Start("player"))

	reward, err := s.Select(2)
	require.NoError(t, err)
	require.NotNil(t, reward)
	assert.Equal(t, "RC", reward.Name)
	assert.Equal(t, StateReveal, s.State())
	assert.Equal(t, []int{2}, s.Answers())
	assert.Equal(t, 1, s.Scores().Get(domain.TraitFreeSpirit))
}

func TestSessionSharedSubQuestion(t *testing.T) {
	s := NewSessionWith(testBank())
	require.NoError(t, s.Start("player"))
	_, err := s.Select(0)
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	// First pick descends into the sub-question without scoring.
	reward, err := s.Select(1)
	require.NoError(t, err)
	assert.Nil(t, reward)
	assert.Equal(t, StateSubQuestion, s.State())
	assert.Len(t, s.Answers(), 1)

	// Card image comes from the parent's selected option.
	assert.Equal(t, "img-b", s.SubCardImage())

	// Second pick scores from the sub-question's own arrays.
	reward, err = s.Select(0)
	require.NoError(t, err)
	require.NotNil(t, reward)
	assert.Equal(t, "SR0", reward.Name)
	assert.Equal(t, StateReveal, s.State())

	// One answer per top-level question, and the sub's trait won: the
	// only Challenger point is the one from question 1.
	assert.Equal(t, []int{0, 0}, s.Answers())
	assert.Equal(t, 1, s.Scores().Get(domain.TraitLoyalist))
	assert.Equal(t, 1, s.Scores().Get(domain.TraitChallenger))
}

func TestSessionPerOptionSubQuestion(t *testing.T) {
	s := NewSessionWith(testBank())
	require.NoError(t, s.Start("player"))
	for i := 0; i < 2; i++ {
		_, err := s.Select(0)
		require.NoError(t, err)
		if s.State() == StateSubQuestion {
			_, err = s.Select(0)
			require.NoError(t, err)
		}
		require.NoError(t, s.Advance())
	}

	// Parent option 1 selects the second sub-question.
	_, err := s.Select(1)
	require.NoError(t, err)
	sub := s.ActiveSubQuestion()
	require.NotNil(t, sub)
	assert.Equal(t, "y0", sub.Options[0])

	// The sub declares no traits, so attribution falls back to the
	// parent's list (which is also nil here: nothing is scored).
	before := s.Scores()
	reward, err := s.Select(1)
	require.NoError(t, err)
	assert.Equal(t, "YR1", reward.Name)
	assert.Equal(t, before, s.Scores())

	require.NoError(t, s.Advance())
	assert.Equal(t, StateSummary, s.State())
	assert.Len(t, s.Answers(), 3)
	assert.Len(t, s.Items(), 3)
}

func TestSessionSubStateDoesNotLeak(t *testing.T) {
	s := NewSessionWith(testBank())
	require.NoError(t, s.Start("player"))
	_, err := s.Select(0)
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	// Enter the shared sub-question, score, and advance: the next
	// question must render from its own top-level data.
	_, err = s.Select(0)
	require.NoError(t, err)
	_, err = s.Select(1)
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	assert.Equal(t, StateQuestion, s.State())
	assert.Nil(t, s.ActiveSubQuestion())
	assert.Equal(t, "per-option", s.CurrentQuestion().Text)
}

func TestSessionStateGuards(t *testing.T) {
	s := NewSessionWith(testBank())

	_, err := s.Select(0)
	assert.ErrorIs(t, err, ErrWrongState)
	assert.ErrorIs(t, s.Advance(), ErrWrongState)

	require.NoError(t, s.Start("player"))
	_, err = s.Select(9)
	assert.ErrorIs(t, err, ErrOptionOutOfRange)
	assert.ErrorIs(t, s.ToSuggestion(), ErrWrongState)
}

func finishQuiz(t *testing.T, s *Session) {
	t.Helper()
	for s.State() == StateQuestion || s.State() == StateSubQuestion {
		_, err := s.Select(0)
		require.NoError(t, err)
		if s.State() == StateReveal {
			require.NoError(t, s.Advance())
		}
	}
	require.Equal(t, StateSummary, s.State())
}

func TestBuildSubmission(t *testing.T) {
	s := NewSessionWith(testBank())
	require.NoError(t, s.Start("player"))

	_, err := s.BuildSubmission("too early")
	assert.ErrorIs(t, err, ErrWrongState)

	finishQuiz(t, s)

	payload, err := s.BuildSubmission("  more cats please  ")
	require.NoError(t, err)
	assert.Equal(t, "player", payload.Username)
	assert.Len(t, payload.Answers, 3)
	assert.Len(t, payload.Items, 3)
	assert.Equal(t, "more cats please", payload.Suggestion)
	assert.Equal(t, payload.PersonalityScores, s.Scores())

	trait, result := s.Result()
	assert.Equal(t, string(trait), payload.PersonalityType)
	assert.Equal(t, strings.ReplaceAll(result.Title, "\n", " "), payload.PersonalityName)
}

func TestSessionSubmit(t *testing.T) {
	t.Run("success reaches the final state", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/submit", r.URL.Path)
			var payload Submission
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "player", payload.Username)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
		}))
		defer srv.Close()

		s := NewSessionWith(testBank())
		require.NoError(t, s.Start("player"))
		finishQuiz(t, s)

		require.NoError(t, s.Submit(context.Background(), NewClient(srv.URL), "hi"))
		assert.Equal(t, StateFinal, s.State())
		assert.False(t, s.Submitting())
	})

	t.Run("failure keeps state for a retry", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "disk full"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
		}))
		defer srv.Close()

		s := NewSessionWith(testBank())
		require.NoError(t, s.Start("player"))
		finishQuiz(t, s)
		answers := append([]int(nil), s.Answers()...)

		err := s.Submit(context.Background(), NewClient(srv.URL), "hi")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NotEqual(t, StateFinal, s.State())
		assert.Equal(t, answers, s.Answers())

		// Retry without redoing the quiz.
		require.NoError(t, s.Submit(context.Background(), NewClient(srv.URL), "hi"))
		assert.Equal(t, StateFinal, s.State())
	})

	t.Run("transport failure is surfaced", func(t *testing.T) {
		s := NewSessionWith(testBank())
		require.NoError(t, s.Start("player"))
		finishQuiz(t, s)

		err := s.Submit(context.Background(), NewClient("http://127.0.0.1:1"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not reach server")
	})
}
