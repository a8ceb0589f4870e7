package request

// SignupRequest is the request body for registering a handle
type SignupRequest struct {
	UserHandle string `json:"userHandle"`
	Password   string `json:"password"`
}

// LoginRequest is the request body for logging in. The login handler
// decodes it strictly: unexpected fields fail the request
type LoginRequest struct {
	UserHandle string `json:"userHandle"`
	Password   string `json:"password"`
}

// SubmitScoreRequest is the request body for posting a high score.
// Score is a pointer so a missing value can be told apart from an
// explicit zero
type SubmitScoreRequest struct {
	Level      string   `json:"level"`
	UserHandle string   `json:"userHandle"`
	Score      *float64 `json:"score"`
	Timestamp  string   `json:"timestamp"`
}
