package aiquiz

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultQuestionCount = 10
	DefaultDifficulty    = "mixed"
)

const (
	TypeMultipleChoice = "multiple-choice"
	TypeShortAnswer    = "short-answer"
	TypeTrueFalse      = "true-false"
)

func DefaultQuestionTypes() []string {
	return []string{TypeMultipleChoice, TypeShortAnswer, TypeTrueFalse}
}

// QuestionRequest covers the three request variants. Which source field is
// required depends on the Variant; the OCR variant ignores count, difficulty
// and types.
type QuestionRequest struct {
	QuestionCount Count    `json:"questionCount"`
	Difficulty    string   `json:"difficulty"`
	QuestionTypes []string `json:"questionTypes"`
	Text          string   `json:"text"`
	Topic         string   `json:"topic"`
}

// Count accepts any whole JSON number, so 3 and 3.0 both decode.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("questionCount must be a number, got %s", b)
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("questionCount must be a whole number, got %s", b)
	}
	*c = Count(f)
	return nil
}

// NewQuestionRequest returns a request pre-filled with defaults, so decoding a
// body over it only replaces the fields the caller sent.
func NewQuestionRequest() QuestionRequest {
	return QuestionRequest{
		QuestionCount: DefaultQuestionCount,
		Difficulty:    DefaultDifficulty,
		QuestionTypes: DefaultQuestionTypes(),
	}
}

func (r *QuestionRequest) applyDefaults() {
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	if r.QuestionTypes == nil {
		r.QuestionTypes = DefaultQuestionTypes()
	}
}

// Question documents what the model is asked to produce. Responses are
// relayed as raw JSON and never decoded into this type by the service.
type Question struct {
	ID            int             `json:"id"`
	Type          string          `json:"type"`
	Difficulty    string          `json:"difficulty"`
	Question      string          `json:"question"`
	Options       []string        `json:"options,omitempty"`
	CorrectAnswer json.RawMessage `json:"correct_answer,omitempty"`
	SampleAnswer  string          `json:"sample_answer,omitempty"`
	Explanation   string          `json:"explanation"`
	Topic         string          `json:"topic"`
	SourceQuality string          `json:"source_quality,omitempty"`
	OCRNotes      string          `json:"ocr_notes,omitempty"`
}

type Metadata struct {
	TotalQuestions         int            `json:"total_questions"`
	DifficultyDistribution map[string]int `json:"difficulty_distribution"`
	TypeDistribution       map[string]int `json:"type_distribution"`
	GeneratedAt            string         `json:"generated_at"`
	SourceLength           int            `json:"source_length"`
}

type QuestionsResponse struct {
	Questions []Question `json:"questions"`
	Metadata  *Metadata  `json:"metadata,omitempty"`
}
