package assessment

import "strings"

// IdentifyKnowledgeGaps maps a goal plus the recorded knowledge levels to
// a list of canonical gap tags. Rule evaluation order is fixed — the
// deployment group before the frontend group — so the output is
// reproducible regardless of answer order. A prerequisite counts as met
// only when its topic appears with a level other than "none".
func IdentifyKnowledgeGaps(goal string, levels []KnowledgeLevel) []string {
	gaps := []string{}
	lowerGoal := strings.ToLower(goal)

	if strings.Contains(lowerGoal, "vercel") || strings.Contains(lowerGoal, "deploy") {
		if !hasTopic(levels, "deployment") {
			gaps = append(gaps, "deployment-basics")
		}
		if !hasTopic(levels, "git") {
			gaps = append(gaps, "git-basics")
		}
	}

	if strings.Contains(lowerGoal, "react") || strings.Contains(lowerGoal, "next") {
		if !hasTopic(levels, "frontend") {
			gaps = append(gaps, "react-basics")
		}
	}

	return gaps
}

func hasTopic(levels []KnowledgeLevel, topic string) bool {
	for _, kl := range levels {
		if kl.Topic == topic && kl.Level != LevelNone {
			return true
		}
	}
	return false
}
