package domain

import "time"

// Response is the durable per-submission record, the system of record.
// It is created exactly once per accepted submission and never mutated.
type Response struct {
	SessionID string `json:"sessionId"`
	Username  string `json:"username"`
	// Answers holds the human-readable option texts resolved server-side
	// from the trusted question bank; RawAnswers the validated indices.
	Answers           []string    `json:"answers"`
	RawAnswers        []int       `json:"rawAnswers"`
	Items             []string    `json:"items"`
	PersonalityType   string      `json:"personalityType"`
	PersonalityName   string      `json:"personalityName"`
	PersonalityScores TraitScores `json:"personalityScores"`
	Suggestion        string      `json:"suggestion"`
	// Timestamp is the display-formatted local time; SubmittedAt the
	// machine instant used for export ordering.
	Timestamp   string    `json:"timestamp"`
	SubmittedAt time.Time `json:"submittedAt"`
	IP          string    `json:"ip"`
}
