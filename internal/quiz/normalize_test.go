package quiz

import (
	"testing"

	"github.com/quizcert/quizcert-backend/internal/model"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	q := Normalize(model.RawQuestion{Question: "anything"})

	if q.ID == "" {
		t.Error("missing ID should be generated")
	}
	if q.Type != model.QuestionTypeSingleChoice {
		t.Errorf("Type = %q, want default %q", q.Type, model.QuestionTypeSingleChoice)
	}
	if q.Options == nil || len(q.Options) != 0 {
		t.Errorf("Options = %v, want empty list", q.Options)
	}
	if q.Order != 0 {
		t.Errorf("Order = %d, want 0", q.Order)
	}
}

func TestNormalizeKeepsProvidedValues(t *testing.T) {
	order := 7
	raw := model.RawQuestion{
		ID:            "  q-42 ",
		Question:      "text",
		Type:          "truefalse",
		Options:       []string{"yes", "no"},
		CorrectAnswer: true,
		Order:         &order,
		Explanation:   "because",
	}
	q := Normalize(raw)

	if q.ID != "q-42" {
		t.Errorf("ID = %q, want trimmed q-42", q.ID)
	}
	if q.Type != model.QuestionTypeTrueFalse || q.Order != 7 || q.Explanation != "because" {
		t.Errorf("unexpected normalized question: %+v", q)
	}
	if ok, _ := Validate(q); !ok {
		t.Error("normalized true/false question with correct answer should validate")
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	tests := []struct {
		name     string
		question model.Question
		wantOK   bool
		wantErrs int
	}{
		{
			name: "valid single choice",
			question: model.Question{
				Question:      "pick",
				Type:          model.QuestionTypeSingleChoice,
				Options:       []string{"a", "b"},
				CorrectAnswer: float64(0),
			},
			wantOK: true,
		},
		{
			name: "choice without options or answer",
			question: model.Question{
				Question: "pick",
				Type:     model.QuestionTypeMultipleChoice,
				Options:  []string{"only one"},
			},
			wantOK:   false,
			wantErrs: 2,
		},
		{
			name: "empty text and type",
			question: model.Question{
				Question: "   ",
			},
			wantOK:   false,
			wantErrs: 2,
		},
		{
			name: "true/false missing answer",
			question: model.Question{
				Question: "really?",
				Type:     model.QuestionTypeTrueFalse,
			},
			wantOK:   false,
			wantErrs: 1,
		},
		{
			name: "free text never needs options",
			question: model.Question{
				Question: "spell it",
				Type:     model.QuestionTypeFreeText,
			},
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := Validate(tt.question)
			if ok != tt.wantOK {
				t.Errorf("Validate() ok = %v, want %v (errors: %v)", ok, tt.wantOK, errs)
			}
			if !tt.wantOK && len(errs) != tt.wantErrs {
				t.Errorf("got %d errors %v, want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}
