package quiz

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/quizcert/quizcert-backend/internal/model"
)

// PassThreshold is the fixed passing percentage.
const PassThreshold = 70

// Result is the outcome of grading one attempt.
type Result struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}

// Score grades submitted answers against the full question set.
// Total is always the number of questions, regardless of how many answers
// were submitted. Unknown question IDs and nil answers contribute nothing;
// malformed input never raises an error.
func Score(questions []model.Question, answers []model.Answer) Result {
	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	correct := 0
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		if answerCorrect(q, a.Value) {
			correct++
		}
	}

	total := len(questions)
	percentage := 0
	if total > 0 {
		// Round half up.
		percentage = int(math.Floor(float64(correct)*100/float64(total) + 0.5))
	}

	return Result{
		Score:      correct,
		Total:      total,
		Percentage: percentage,
		Passed:     percentage >= PassThreshold,
	}
}

// answerCorrect applies the per-type equivalence rules. A list-shaped
// correct answer always grades as multiple choice, whatever the declared
// type says.
func answerCorrect(q *model.Question, submitted interface{}) bool {
	if q.Type == model.QuestionTypeMultipleChoice || isList(q.CorrectAnswer) {
		return listsEqualUnordered(toList(q.CorrectAnswer), toList(submitted))
	}

	switch q.Type {
	case model.QuestionTypeSingleChoice:
		return scalarEqual(submitted, q.CorrectAnswer)
	case model.QuestionTypeTrueFalse:
		// Deliberately loose: boolean true, string "true" and any
		// boolean-like token compare equal after stringification.
		// Load-bearing for existing data shapes; do not tighten.
		return strings.ToLower(stringify(submitted)) == strings.ToLower(stringify(q.CorrectAnswer))
	default:
		// Free text and anything else.
		return strings.ToLower(strings.TrimSpace(stringify(submitted))) ==
			strings.ToLower(strings.TrimSpace(stringify(q.CorrectAnswer)))
	}
}

// scalarEqual is strict equality over JSON scalar values. Non-scalar
// shapes (objects, lists) never compare equal; comparing them with ==
// would panic on uncomparable dynamic types.
func scalarEqual(a, b interface{}) bool {
	if !isScalar(a) || !isScalar(b) {
		return false
	}
	return a == b
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case string, bool, float64, int:
		return true
	}
	return false
}

func isList(v interface{}) bool {
	switch v.(type) {
	case []interface{}, []string, []int, []float64:
		return true
	}
	return false
}

// toList normalizes a scalar or list value into a list. Absent → empty.
func toList(v interface{}) []interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case []interface{}:
		return t
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []int:
		out := make([]interface{}, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	case []float64:
		out := make([]interface{}, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	default:
		return []interface{}{v}
	}
}

// listsEqualUnordered compares two value lists after sorting their
// canonical string forms: same length, same values, order-independent.
func listsEqualUnordered(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	as := make([]string, len(a))
	for i, v := range a {
		as[i] = stringify(v)
	}
	bs := make([]string, len(b))
	for i, v := range b {
		bs[i] = stringify(v)
	}
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// stringify renders a JSON-decoded value in its canonical string form.
// Whole-number floats print without a fraction so 2 and 2.0 agree.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
