package quiz

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/quizcert/quizcert-backend/internal/model"
)

// Normalize canonicalizes a loosely-typed question record, filling
// defaults without rejecting malformed input. Validation is a separate
// concern; see Validate.
func Normalize(raw model.RawQuestion) model.Question {
	q := model.Question{
		ID:            strings.TrimSpace(raw.ID),
		Question:      raw.Question,
		Type:          model.QuestionType(strings.TrimSpace(raw.Type)),
		Options:       raw.Options,
		CorrectAnswer: raw.CorrectAnswer,
		Explanation:   raw.Explanation,
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Type == "" {
		q.Type = model.QuestionTypeSingleChoice
	}
	if q.Options == nil {
		q.Options = []string{}
	}
	if raw.Order != nil {
		q.Order = *raw.Order
	}
	return q
}

// Validate checks a question's structural requirements and returns every
// violated rule as a human-readable message rather than failing on the
// first one.
func Validate(q model.Question) (bool, []string) {
	var errs []string

	if strings.TrimSpace(q.Question) == "" {
		errs = append(errs, "question text is required")
	}
	if q.Type == "" {
		errs = append(errs, "question type is required")
	}

	switch q.Type {
	case model.QuestionTypeSingleChoice, model.QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s questions need at least 2 options", q.Type))
		}
		if q.CorrectAnswer == nil {
			errs = append(errs, "a correct answer is required")
		}
	case model.QuestionTypeTrueFalse:
		if q.CorrectAnswer == nil {
			errs = append(errs, "a correct answer is required")
		}
	}

	return len(errs) == 0, errs
}
