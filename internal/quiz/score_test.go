package quiz

import (
	"testing"

	"github.com/quizcert/quizcert-backend/internal/model"
)

func singleChoice(id string, correct interface{}) model.Question {
	return model.Question{
		ID:            id,
		Question:      "pick one",
		Type:          model.QuestionTypeSingleChoice,
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: correct,
	}
}

func TestScoreTotalIsQuestionCount(t *testing.T) {
	questions := []model.Question{
		singleChoice("q1", float64(0)),
		singleChoice("q2", float64(1)),
		singleChoice("q3", float64(2)),
	}

	res := Score(questions, nil)
	if res.Total != 3 {
		t.Errorf("Total = %d, want 3 with no answers", res.Total)
	}

	res = Score(questions, []model.Answer{{QuestionID: "q1", Value: float64(0)}})
	if res.Total != 3 {
		t.Errorf("Total = %d, want 3 with one answer", res.Total)
	}
}

func TestScoreSingleChoiceStrictEquality(t *testing.T) {
	questions := []model.Question{singleChoice("q1", float64(1))}

	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"matching index", float64(1), 1},
		{"wrong index", float64(2), 0},
		{"nil answer", nil, 0},
		{"string vs number", "1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(questions, []model.Answer{{QuestionID: "q1", Value: tt.value}})
			if res.Score != tt.want {
				t.Errorf("Score = %d, want %d", res.Score, tt.want)
			}
		})
	}
}

func TestScoreMultipleChoiceOrderIndependent(t *testing.T) {
	question := model.Question{
		ID:            "q1",
		Question:      "pick several",
		Type:          model.QuestionTypeMultipleChoice,
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: []interface{}{float64(0), float64(2)},
	}
	questions := []model.Question{question}

	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"exact order", []interface{}{float64(0), float64(2)}, 1},
		{"reversed order", []interface{}{float64(2), float64(0)}, 1},
		{"strict subset", []interface{}{float64(0)}, 0},
		{"strict superset", []interface{}{float64(0), float64(2), float64(3)}, 0},
		{"nothing selected", []interface{}{}, 0},
		{"nil answer", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(questions, []model.Answer{{QuestionID: "q1", Value: tt.value}})
			if res.Score != tt.want {
				t.Errorf("Score = %d, want %d", res.Score, tt.want)
			}
		})
	}
}

func TestScoreListCorrectAnswerForcesMultiple(t *testing.T) {
	// Declared single-choice but the correct answer is a list: graded as
	// multiple choice, scalar submission matching the single element wins.
	question := singleChoice("q1", []interface{}{float64(1)})
	res := Score([]model.Question{question}, []model.Answer{{QuestionID: "q1", Value: float64(1)}})
	if res.Score != 1 {
		t.Errorf("Score = %d, want 1 for scalar matching one-element list", res.Score)
	}
}

func TestScoreTrueFalseLooseCoercion(t *testing.T) {
	questions := []model.Question{{
		ID:            "q1",
		Question:      "true or false",
		Type:          model.QuestionTypeTrueFalse,
		Options:       []string{},
		CorrectAnswer: true,
	}}

	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"boolean true", true, 1},
		{"string true", "true", 1},
		{"uppercase token", "TRUE", 1},
		{"boolean false", false, 0},
		{"string false", "false", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(questions, []model.Answer{{QuestionID: "q1", Value: tt.value}})
			if res.Score != tt.want {
				t.Errorf("Score = %d, want %d", res.Score, tt.want)
			}
		})
	}
}

func TestScoreFreeTextTrimsAndLowercases(t *testing.T) {
	questions := []model.Question{{
		ID:            "q1",
		Question:      "capital of France",
		Type:          model.QuestionTypeFreeText,
		Options:       []string{},
		CorrectAnswer: "Paris",
	}}

	res := Score(questions, []model.Answer{{QuestionID: "q1", Value: "  paris "}})
	if res.Score != 1 {
		t.Errorf("Score = %d, want 1 for trimmed lower-cased match", res.Score)
	}

	res = Score(questions, []model.Answer{{QuestionID: "q1", Value: "Lyon"}})
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0 for mismatch", res.Score)
	}
}

func TestScoreObjectShapedValuesNeverMatch(t *testing.T) {
	// Imported records can carry object-shaped correct answers, and the
	// client can submit objects too. Grading must treat them as simply
	// not correct instead of blowing up on an uncomparable type.
	obj := map[string]interface{}{"value": float64(1)}

	tests := []struct {
		name    string
		correct interface{}
		value   interface{}
	}{
		{"object on both sides", map[string]interface{}{"value": float64(1)}, obj},
		{"object correct answer", map[string]interface{}{"value": float64(1)}, float64(1)},
		{"object submission", float64(1), obj},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := []model.Question{singleChoice("q1", tt.correct)}
			res := Score(questions, []model.Answer{{QuestionID: "q1", Value: tt.value}})
			if res.Score != 0 {
				t.Errorf("Score = %d, want 0 for object-shaped values", res.Score)
			}
		})
	}
}

func TestScoreUnknownQuestionIDIgnored(t *testing.T) {
	questions := []model.Question{singleChoice("q1", float64(0))}
	res := Score(questions, []model.Answer{
		{QuestionID: "q1", Value: float64(0)},
		{QuestionID: "ghost", Value: float64(0)},
	})
	if res.Score != 1 || res.Total != 1 {
		t.Errorf("got {score:%d total:%d}, want {score:1 total:1}", res.Score, res.Total)
	}
}

func TestScorePercentageAndPassBoundary(t *testing.T) {
	makeSet := func(n int) []model.Question {
		qs := make([]model.Question, n)
		for i := range qs {
			qs[i] = singleChoice(string(rune('a'+i)), float64(0))
		}
		return qs
	}
	answerFirst := func(qs []model.Question, n int) []model.Answer {
		var answers []model.Answer
		for i := 0; i < n; i++ {
			answers = append(answers, model.Answer{QuestionID: qs[i].ID, Value: float64(0)})
		}
		return answers
	}

	qs := makeSet(10)

	// 7/10 → exactly 70, passes.
	res := Score(qs, answerFirst(qs, 7))
	if res.Score != 7 || res.Total != 10 || res.Percentage != 70 || !res.Passed {
		t.Errorf("got %+v, want {score:7 total:10 percentage:70 passed:true}", res)
	}

	// 69 fails: 69/100.
	var qs100 []model.Question
	for i := 0; i < 100; i++ {
		qs100 = append(qs100, singleChoice(itoa(i), float64(0)))
	}
	res = Score(qs100, answerFirst(qs100, 69))
	if res.Percentage != 69 || res.Passed {
		t.Errorf("got %+v, want percentage 69 and passed false", res)
	}

	// Round half up: 1/8 = 12.5 → 13.
	qs8 := makeSet(8)
	res = Score(qs8, answerFirst(qs8, 1))
	if res.Percentage != 13 {
		t.Errorf("Percentage = %d, want 13 (round half up)", res.Percentage)
	}
}

func TestScoreEmptyQuestionSet(t *testing.T) {
	res := Score(nil, []model.Answer{{QuestionID: "q1", Value: float64(0)}})
	if res.Total != 0 || res.Percentage != 0 || res.Passed {
		t.Errorf("got %+v, want zero total and percentage, not passed", res)
	}
}

func itoa(n int) string {
	return stringify(n)
}
