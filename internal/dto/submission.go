package dto

// SubmitRequest is the wire payload of POST /api/submit. Answers stay
// loosely typed because clients may send indices as numbers or numeric
// strings; the validator coerces and bounds them.
type SubmitRequest struct {
	Username          string         `json:"username"`
	Answers           []any          `json:"answers"`
	Items             []any          `json:"items"`
	Suggestion        string         `json:"suggestion"`
	PersonalityType   string         `json:"personalityType"`
	PersonalityName   string         `json:"personalityName"`
	PersonalityScores map[string]any `json:"personalityScores"`
}

// SubmitResponse is the body returned by POST /api/submit.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body returned by GET /api/health.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Version   string `json:"version"`
}

// StatsResponse is the body returned by GET /api/stats.
type StatsResponse struct {
	Success        bool `json:"success"`
	TotalResponses int  `json:"totalResponses"`
}

// ErrorResponse is the generic failure body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
