package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"starter-pack-quiz/internal/domain"
)

// Submission is the wire payload sent to POST /api/submit.
type Submission struct {
	Username          string             `json:"username"`
	Answers           []int              `json:"answers"`
	Items             []string           `json:"items"`
	Suggestion        string             `json:"suggestion"`
	PersonalityType   string             `json:"personalityType"`
	PersonalityName   string             `json:"personalityName"`
	PersonalityScores domain.TraitScores `json:"personalityScores"`
}

// BuildSubmission assembles the session outcome into a wire payload.
// Valid once the summary has been reached.
func (s *Session) BuildSubmission(suggestion string) (*Submission, error) {
	if s.state != StateSummary && s.state != StateSuggestion {
		return nil, ErrWrongState
	}

	trait, result := s.Result()
	items := make([]string, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.Name)
	}

	return &Submission{
		Username:          s.username,
		Answers:           s.answers,
		Items:             items,
		Suggestion:        strings.TrimSpace(suggestion),
		PersonalityType:   string(trait),
		PersonalityName:   strings.ReplaceAll(result.Title, "\n", " "),
		PersonalityScores: s.scores,
	}, nil
}

// Client posts submissions to the backend. No automatic retries: a
// failure is returned to the caller with the session left intact.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a submission client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type submitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit posts one payload. Transport failures and application-level
// failures both come back as errors carrying a human-readable reason.
func (c *Client) Submit(ctx context.Context, payload *Submission) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/submit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach server: %w", err)
	}
	defer resp.Body.Close()

	var result submitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !result.Success {
		if result.Message == "" {
			result.Message = "please try again"
		}
		return fmt.Errorf("submission rejected: %s", result.Message)
	}
	return nil
}

// Submit runs the full submission step for the session: it gates against
// double-submission, keeps all accumulated state on failure so the player
// can retry without redoing the quiz, and enters the final state only on
// success.
func (s *Session) Submit(ctx context.Context, client *Client, suggestion string) error {
	if s.submitting {
		return ErrSubmitInProgress
	}

	payload, err := s.BuildSubmission(suggestion)
	if err != nil {
		return err
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	if err := client.Submit(ctx, payload); err != nil {
		return err
	}
	s.state = StateFinal
	return nil
}
