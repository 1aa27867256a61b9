package pathgen

import (
	"fmt"
	"strings"
)

func buildModulesPrompt(goal, knowledgeLevel string, gaps []string) string {
	gapList := "none identified"
	if len(gaps) > 0 {
		gapList = strings.Join(gaps, ", ")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "You are a curriculum designer. Create a learning path for: %q\n\n", goal)
	fmt.Fprintf(&b, "Current Knowledge Level: %s\n", knowledgeLevel)
	fmt.Fprintf(&b, "Knowledge Gaps: %s\n\n", gapList)
	b.WriteString(`Generate 3-4 learning modules in logical order (prerequisites first). For each module provide:
1. topic: Main topic name (use kebab-case like "deployment-basics")
2. explanation: Why this module comes at this position
3. order: Sequential number starting from 1

Return ONLY a JSON array in this format:
[
  {
    "topic": "deployment-basics",
    "explanation": "Understanding core deployment concepts before platform-specific features",
    "order": 1
  }
]`)

	return b.String()
}
