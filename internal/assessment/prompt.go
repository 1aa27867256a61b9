package assessment

import (
	"fmt"
	"strings"
)

func buildQuestionsPrompt(goal string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an educational assessment expert. A learner wants to: %q\n\n", goal)
	b.WriteString(`Generate 3 assessment questions to evaluate their current knowledge level. Questions should:
1. Be open-ended to allow various expertise levels
2. Cover prerequisite knowledge needed for the goal
3. Help identify knowledge gaps

Return ONLY a JSON array in this format:
[
  {
    "id": "q1",
    "question": "What is your experience with...",
    "topicArea": "react"
  },
  {
    "id": "q2",
    "question": "Have you worked with...",
    "topicArea": "deployment"
  }
]`)

	return b.String()
}

func buildEvaluationPrompt(q Question, answer string) string {
	var b strings.Builder

	b.WriteString("You are an educational assessor. Evaluate this learner's response:\n\n")
	fmt.Fprintf(&b, "Question: %s\n", q.Question)
	fmt.Fprintf(&b, "Topic Area: %s\n", q.TopicArea)
	fmt.Fprintf(&b, "Answer: %s\n\n", answer)
	b.WriteString(`Assess their knowledge level as:
- "none": No knowledge or experience
- "basic": Beginner level understanding
- "intermediate": Comfortable with core concepts
- "advanced": Deep expertise

Also provide a confidence score from 0.0 to 1.0.

Return ONLY a JSON object in this format:
{
  "level": "intermediate",
  "confidence": 0.8
}`)

	return b.String()
}
