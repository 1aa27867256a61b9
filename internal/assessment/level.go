package assessment

// DetermineOverallLevel aggregates per-question levels into a single
// label. Pure function: levels map to ordinal scores {none:0, basic:1,
// intermediate:2, advanced:3}, the average is thresholded at 2.5
// (advanced) and 1.5 (intermediate), boundaries inclusive.
func DetermineOverallLevel(levels []KnowledgeLevel) string {
	if len(levels) == 0 {
		return "beginner"
	}

	sum := 0
	for _, kl := range levels {
		sum += levelScores[kl.Level]
	}
	avg := float64(sum) / float64(len(levels))

	switch {
	case avg >= 2.5:
		return "advanced"
	case avg >= 1.5:
		return "intermediate"
	default:
		return "beginner"
	}
}
