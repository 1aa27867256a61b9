// Package assessment turns a learning goal into a short question battery,
// scores free-text answers into knowledge levels, and derives the
// aggregate level and gap list the path generator consumes.
package assessment

// QuestionCount is the fixed size of the assessment battery.
const QuestionCount = 3

// Question is a single open-ended assessment question. The battery is
// generated once per session and immutable after creation.
type Question struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	TopicArea string `json:"topicArea"`
}

// Answer records the learner's response to one question.
type Answer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// Level is an ordinal knowledge level.
type Level string

const (
	LevelNone         Level = "none"
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// levelScores maps levels to ordinal values for aggregation.
var levelScores = map[Level]int{
	LevelNone:         0,
	LevelBasic:        1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
}

// KnowledgeLevel is the scored outcome of one answered question.
type KnowledgeLevel struct {
	Topic      string  `json:"topic"`
	Level      Level   `json:"level"`
	Confidence float64 `json:"confidence"`
}
