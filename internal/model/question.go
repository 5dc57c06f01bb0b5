package model

import (
	"time"
)

// QuestionType enumerates supported question types.
type QuestionType string

const (
	QuestionTypeSingleChoice   QuestionType = "qcm"
	QuestionTypeMultipleChoice QuestionType = "multiple"
	QuestionTypeTrueFalse      QuestionType = "truefalse"
	QuestionTypeFreeText       QuestionType = "text"
)

// Question represents a quiz question. CorrectAnswer is loosely typed on
// purpose: an option index, a list of indices, a boolean, or a string token,
// depending on Type and on the shape the record was imported with.
type Question struct {
	ID            string       `json:"id"`
	Question      string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options"`
	CorrectAnswer interface{}  `json:"correctAnswer"`
	Order         int          `json:"order"`
	Explanation   string       `json:"explanation,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// RawQuestion is an incoming question record before normalization.
// Every field is optional; the normalizer fills defaults.
type RawQuestion struct {
	ID            string      `json:"id"`
	Question      string      `json:"question"`
	Type          string      `json:"type"`
	Options       []string    `json:"options"`
	CorrectAnswer interface{} `json:"correctAnswer"`
	Order         *int        `json:"order"`
	Explanation   string      `json:"explanation"`
}

// QuestionForTaking is a question without the correct answer and
// explanation, sent to participants during the quiz.
type QuestionForTaking struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options"`
	Order    int          `json:"order"`
}

// ForTaking strips the grading fields from a question.
func (q *Question) ForTaking() QuestionForTaking {
	return QuestionForTaking{
		ID:       q.ID,
		Question: q.Question,
		Type:     q.Type,
		Options:  q.Options,
		Order:    q.Order,
	}
}

// ImportQuestionsRequest is the payload for bulk question import.
type ImportQuestionsRequest struct {
	Questions []RawQuestion `json:"questions" binding:"required,min=1"`
}

// ImportReport aggregates per-item results of a bulk import.
// One bad record never aborts the batch.
type ImportReport struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// UpdateQuestionRequest is the payload for editing an existing question.
type UpdateQuestionRequest struct {
	Question      string      `json:"question" binding:"omitempty,min=1,max=2000"`
	Type          string      `json:"type" binding:"omitempty,oneof=qcm multiple truefalse text"`
	Options       []string    `json:"options" binding:"omitempty"`
	CorrectAnswer interface{} `json:"correctAnswer" binding:"omitempty"`
	Order         *int        `json:"order" binding:"omitempty,min=0"`
	Explanation   *string     `json:"explanation" binding:"omitempty"`
}
