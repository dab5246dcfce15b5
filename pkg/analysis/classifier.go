package analysis

// Classify scores every catalog exercise against the canonical angle set
// and returns the best match.
//
// Each exercise scores passed/evaluated over its primary indicators; an
// indicator whose angle is absent drops out of both counts. The winner
// must score strictly above ConfidenceFloor, otherwise the result is
// ("unknown", 0). Ties resolve to the lexicographically smallest exercise
// key, which keeps the outcome deterministic regardless of catalog
// iteration order.
func (a *Analyzer) Classify(angles AngleSet) Classification {
	best := Classification{Exercise: ExerciseUnknown, Confidence: 0}
	if len(angles) == 0 {
		return best
	}

	// Keys() is sorted, so replacing only on a strictly greater score
	// leaves the lexicographically smallest key in place on ties.
	bestScore := -1.0
	for _, key := range a.cat.Keys() {
		pattern, ok := a.cat.Pattern(key)
		if !ok {
			continue
		}

		passed, evaluated := 0, 0
		for _, id := range pattern.Primary {
			ind, ok := a.cat.Indicator(id)
			if !ok || !ind.Evaluable() {
				continue
			}
			value, present := angles[ind.Angle]
			if !present {
				continue
			}
			evaluated++
			if ind.Pass(value) {
				passed++
			}
		}
		if evaluated == 0 {
			continue
		}

		score := float64(passed) / float64(evaluated)
		if score > bestScore {
			bestScore = score
			best = Classification{Exercise: key, Confidence: score}
		}
	}

	if bestScore <= ConfidenceFloor {
		return Classification{Exercise: ExerciseUnknown, Confidence: 0}
	}
	return best
}
