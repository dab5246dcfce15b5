package analysis

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// optimalTolerance is how far an in-range angle may drift from its optimal
// value before "adjust for optimal form" feedback fires.
const optimalTolerance = 10.0

// FeedbackNotInDatabase is the single feedback line returned when the
// requested exercise key has no catalog entry. A lookup miss is a normal,
// caller-triggerable outcome, never an error.
const FeedbackNotInDatabase = "Exercise not in database"

// CheckForm evaluates the exercise's thresholds and alignment rules
// against the angle set.
//
// Feedback order is fixed: key angles in profile-declared order, then
// alignment checks in profile-declared order. An angle absent from the set
// is skipped without penalty. Gated alignment checks fire on their angle
// condition; advisory checks (no gate) fire only when earlier feedback
// already flagged the rep, so a clean rep yields an empty list and status
// "correct".
func (a *Analyzer) CheckForm(exercise string, angles AngleSet) FormResult {
	profile, ok := a.cat.Profile(exercise)
	if !ok {
		return FormResult{
			Status:   StatusUnrecognized,
			Feedback: []string{FeedbackNotInDatabase},
		}
	}

	feedback := []string{} // empty, not nil, so the API serializes []

	for _, name := range profile.KeyAngles {
		value, present := angles[name]
		if !present {
			continue
		}
		th := profile.Thresholds[name]
		switch {
		case value < th.Min:
			feedback = append(feedback, fmt.Sprintf("%s too small - increase range", humanize(string(name))))
		case value > th.Max:
			feedback = append(feedback, fmt.Sprintf("%s too large - decrease range", humanize(string(name))))
		case math.Abs(value-th.Optimal) > optimalTolerance:
			feedback = append(feedback, fmt.Sprintf("Adjust %s for optimal form", humanize(string(name))))
		}
	}

	for _, id := range profile.AlignmentChecks {
		check, ok := a.cat.Check(id)
		if !ok {
			continue
		}
		if check.Gate != nil {
			value, present := angles[check.Gate.Angle]
			if present && check.Gate.Holds(value) {
				feedback = append(feedback, check.Feedback)
			}
			continue
		}
		if len(feedback) > 0 {
			feedback = append(feedback, check.Feedback)
		}
	}

	status := StatusCorrect
	if len(feedback) > 0 {
		status = StatusIncorrect
	}
	return FormResult{Status: status, Feedback: feedback}
}

// humanize turns "knee_angle" into "Knee Angle".
func humanize(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
