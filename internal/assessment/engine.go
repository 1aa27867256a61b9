package assessment

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/learnloop/learnloop/internal/llm"
)

// Engine generates and scores assessment questions. Every generative step
// has a deterministic fallback, so Engine methods never fail: an LLM
// hiccup degrades quality, not liveness.
type Engine struct {
	provider llm.Provider
	cfg      Config
}

// NewEngine creates an assessment engine. provider may be nil, in which
// case only the deterministic fallbacks run.
func NewEngine(provider llm.Provider, cfg Config) *Engine {
	return &Engine{provider: provider, cfg: cfg}
}

// GenerateQuestions produces the battery of exactly QuestionCount
// open-ended questions for the goal. On any generation or parse failure it
// returns the fixed default battery.
func (e *Engine) GenerateQuestions(ctx context.Context, goal string) []Question {
	questions, err := e.generateQuestions(ctx, goal)
	if err != nil {
		return DefaultQuestions()
	}
	return questions
}

func (e *Engine) generateQuestions(ctx context.Context, goal string) ([]Question, error) {
	if e.provider == nil {
		return nil, &llm.ErrProviderUnavailable{}
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	resp, err := e.provider.Generate(ctx, llm.Request{
		Prompt:      buildQuestionsPrompt(goal),
		MaxTokens:   e.cfg.QuestionMaxTokens,
		Temperature: e.cfg.QuestionTemperature,
	})
	if err != nil {
		return nil, err
	}

	raw := []byte(llm.ExtractJSON(resp.Text))
	if err := llm.ValidatePayload(QuestionsSchema, raw); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, err
	}

	// The battery size is a workflow invariant; a model that returns a
	// different count is treated as a generation failure.
	if len(questions) != QuestionCount {
		return nil, &llm.ErrEmptyResponse{}
	}

	return questions, nil
}

// DefaultQuestions is the fixed fallback battery. It covers the generic
// prerequisites (frontend, deployment, git) so the workflow can always
// proceed regardless of the generation backend.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:        "q1",
			Question:  "What is your experience with web development and frontend frameworks?",
			TopicArea: "frontend",
		},
		{
			ID:        "q2",
			Question:  "Have you deployed web applications before? If so, what tools or platforms have you used?",
			TopicArea: "deployment",
		},
		{
			ID:        "q3",
			Question:  "Are you familiar with version control systems like Git?",
			TopicArea: "git",
		},
	}
}

// EvaluateAnswer scores a free-text answer into a KnowledgeLevel. The
// primary path asks the model to classify the answer; on any failure the
// deterministic word-count heuristic takes over.
func (e *Engine) EvaluateAnswer(ctx context.Context, q Question, answer string) KnowledgeLevel {
	kl, err := e.evaluateAnswer(ctx, q, answer)
	if err != nil {
		return fallbackEvaluate(q, answer)
	}
	return kl
}

func (e *Engine) evaluateAnswer(ctx context.Context, q Question, answer string) (KnowledgeLevel, error) {
	if e.provider == nil {
		return KnowledgeLevel{}, &llm.ErrProviderUnavailable{}
	}

	ctx = llm.WithPurpose(ctx, "answer-eval")

	resp, err := e.provider.Generate(ctx, llm.Request{
		Prompt:      buildEvaluationPrompt(q, answer),
		MaxTokens:   e.cfg.EvalMaxTokens,
		Temperature: e.cfg.EvalTemperature,
	})
	if err != nil {
		return KnowledgeLevel{}, err
	}

	raw := []byte(llm.ExtractJSON(resp.Text))
	if err := llm.ValidatePayload(EvaluationSchema, raw); err != nil {
		return KnowledgeLevel{}, err
	}

	var out struct {
		Level      Level   `json:"level"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return KnowledgeLevel{}, err
	}

	return KnowledgeLevel{
		Topic:      q.TopicArea,
		Level:      out.Level,
		Confidence: out.Confidence,
	}, nil
}

// fallbackEvaluate scores by answer word count. Deterministic and total:
// longer answers never score below shorter ones.
func fallbackEvaluate(q Question, answer string) KnowledgeLevel {
	wordCount := len(strings.Fields(answer))

	level := LevelNone
	confidence := 0.5

	switch {
	case wordCount > 50:
		level = LevelAdvanced
		confidence = 0.7
	case wordCount > 20:
		level = LevelIntermediate
		confidence = 0.6
	case wordCount > 5:
		level = LevelBasic
		confidence = 0.5
	}

	return KnowledgeLevel{
		Topic:      q.TopicArea,
		Level:      level,
		Confidence: confidence,
	}
}
