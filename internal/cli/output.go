package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MessageResult:
		fmt.Println(v.Message)
	case LoginResult:
		fmt.Printf("Token: %s\n", v.Token)
	case Score:
		o.printScore(v)
	case SubmitResult:
		fmt.Println(v.Message)
		o.printScore(v.NewScore)
	case []Score:
		o.printScores(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MessageResult is a plain confirmation response
type MessageResult struct {
	Message string `json:"message"`
}

// LoginResult is the login response
type LoginResult struct {
	Token string `json:"token"`
}

// Score response type (matches API)
type Score struct {
	ID         int64   `json:"id"`
	Level      string  `json:"level"`
	UserHandle string  `json:"userHandle"`
	Score      float64 `json:"score"`
	Timestamp  string  `json:"timestamp"`
}

// SubmitResult is the score submission response
type SubmitResult struct {
	Message  string `json:"message"`
	NewScore Score  `json:"newScore"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printScore(s Score) {
	fmt.Printf("#%d  level=%s  handle=%s  score=%g  at=%s\n",
		s.ID, s.Level, s.UserHandle, s.Score, s.Timestamp)
}

func (o *Output) printScores(scores []Score) {
	if len(scores) == 0 {
		fmt.Println("No scores")
		return
	}
	for i, s := range scores {
		fmt.Printf("%2d. ", i+1)
		o.printScore(s)
	}
}
