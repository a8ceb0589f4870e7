package response

import "github.com/scorekeep/scorekeep/internal/model"

// Message is a plain confirmation response
type Message struct {
	Message string `json:"message"`
}

// Login is the response for a successful login
type Login struct {
	Token string `json:"token"`
}

// Score represents a stored score record in API responses
type Score struct {
	ID         int64   `json:"id"`
	Level      string  `json:"level"`
	UserHandle string  `json:"userHandle"`
	Score      float64 `json:"score"`
	Timestamp  string  `json:"timestamp"`
}

// ScoreFromModel converts a model.Score to a response Score
func ScoreFromModel(s *model.Score) Score {
	return Score{
		ID:         int64(s.ID),
		Level:      s.Level,
		UserHandle: string(s.Handle),
		Score:      s.Score,
		Timestamp:  s.Timestamp,
	}
}

// ScoresFromModel converts a slice of records, never returning nil so
// empty pages serialize as [] rather than null
func ScoresFromModel(records []*model.Score) []Score {
	result := make([]Score, len(records))
	for i, r := range records {
		result[i] = ScoreFromModel(r)
	}
	return result
}

// SubmitScore is the response for a successful score submission
type SubmitScore struct {
	Message  string `json:"message"`
	NewScore Score  `json:"newScore"`
}
