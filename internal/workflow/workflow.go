package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/learnloop/learnloop/internal/assessment"
	"github.com/learnloop/learnloop/internal/memory"
	"github.com/learnloop/learnloop/internal/pathgen"
)

// Workflow orchestrates assessment and path generation over a memory
// store. All collaborators are injected so tests can run against the
// in-memory store and mock provider.
type Workflow struct {
	store  memory.Store
	engine *assessment.Engine
	paths  *pathgen.Generator
}

// New creates a Workflow.
func New(store memory.Store, engine *assessment.Engine, paths *pathgen.Generator) *Workflow {
	return &Workflow{store: store, engine: engine, paths: paths}
}

// CreateSessionResult is the response to session creation.
type CreateSessionResult struct {
	SessionID string `json:"sessionId"`
	Phase     Phase  `json:"phase"`
	Message   string `json:"message"`
}

// CreateSession captures the goal, generates the question battery, and
// opens the session in the assessment phase.
func (w *Workflow) CreateSession(ctx context.Context, goal string) (*CreateSessionResult, error) {
	if goal == "" {
		return nil, validationErrorf("goal is required")
	}

	sessionID, err := w.store.StartSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("start memory session: %w", err)
	}

	learningGoal := LearningGoal{
		ID:        "goal-" + sessionID,
		Goal:      goal,
		CreatedAt: time.Now().UTC(),
	}
	if err := w.putJSON(ctx, sessionID, keyGoal, learningGoal); err != nil {
		return nil, err
	}

	// Question generation is fallback-protected and never fails.
	questions := w.engine.GenerateQuestions(ctx, goal)

	data := SessionData{
		SessionID:            sessionID,
		Goal:                 goal,
		CurrentQuestionIndex: 0,
		Questions:            questions,
		Answers:              []assessment.Answer{},
		KnowledgeLevels:      []assessment.KnowledgeLevel{},
		Phase:                PhaseAssessment,
	}
	if err := w.putJSON(ctx, sessionID, keySessionData, data); err != nil {
		return nil, err
	}

	return &CreateSessionResult{
		SessionID: sessionID,
		Phase:     PhaseAssessment,
		Message:   "Let's assess your current knowledge to create the best learning path.",
	}, nil
}

// SessionView is the read-only summary returned by GetSession.
type SessionView struct {
	SessionID string   `json:"sessionId"`
	Goal      string   `json:"goal"`
	Phase     Phase    `json:"phase"`
	Progress  Progress `json:"progress"`
}

// GetSession returns the session's goal, phase, and progress.
func (w *Workflow) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	data, err := w.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionView{
		SessionID: data.SessionID,
		Goal:      data.Goal,
		Phase:     data.Phase,
		Progress: Progress{
			Current: data.CurrentQuestionIndex,
			Total:   len(data.Questions),
		},
	}, nil
}

// NextQuestionResult carries either the next question or completion.
type NextQuestionResult struct {
	Completed bool                 `json:"completed,omitempty"`
	Question  *assessment.Question `json:"question,omitempty"`
	Progress  *Progress            `json:"progress,omitempty"`
	Message   string               `json:"message,omitempty"`
}

// NextQuestion returns the current question, or completion once all
// questions have been answered. Read-only: safe to call repeatedly.
func (w *Workflow) NextQuestion(ctx context.Context, sessionID string) (*NextQuestionResult, error) {
	data, err := w.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if data.CurrentQuestionIndex >= len(data.Questions) {
		return &NextQuestionResult{
			Completed: true,
			Message:   "Assessment completed! Generating your learning path...",
		}, nil
	}

	q := data.Questions[data.CurrentQuestionIndex]
	return &NextQuestionResult{
		Question: &q,
		Progress: &Progress{
			Current:    data.CurrentQuestionIndex + 1,
			Total:      len(data.Questions),
			Percentage: percentage(data.CurrentQuestionIndex+1, len(data.Questions)),
		},
	}, nil
}

// SubmitAnswerResult reports whether the battery is complete after this
// submission.
type SubmitAnswerResult struct {
	Completed bool     `json:"completed"`
	Message   string   `json:"message"`
	Progress  Progress `json:"progress"`
}

// SubmitAnswer records and scores one answer, advancing the question
// index. Submitting the final answer flips the phase to generating. Not
// idempotent: replaying the same question requires caller-side dedup.
func (w *Workflow) SubmitAnswer(ctx context.Context, sessionID, questionID, answer string) (*SubmitAnswerResult, error) {
	if questionID == "" || answer == "" {
		return nil, validationErrorf("question ID and answer are required")
	}

	data, err := w.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var question *assessment.Question
	for i := range data.Questions {
		if data.Questions[i].ID == questionID {
			question = &data.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	// Scoring is fallback-protected and never fails.
	kl := w.engine.EvaluateAnswer(ctx, *question, answer)

	data.Answers = append(data.Answers, assessment.Answer{
		QuestionID: questionID,
		Answer:     answer,
	})
	data.KnowledgeLevels = append(data.KnowledgeLevels, kl)
	data.CurrentQuestionIndex++

	completed := data.CurrentQuestionIndex >= len(data.Questions)
	if completed {
		data.Phase = PhaseGenerating
	}

	if err := w.putJSON(ctx, sessionID, keySessionData, data); err != nil {
		return nil, err
	}

	message := "Answer recorded. Ready for next question."
	if completed {
		message = "Assessment completed!"
	}

	return &SubmitAnswerResult{
		Completed: completed,
		Message:   message,
		Progress: Progress{
			Current:    data.CurrentQuestionIndex,
			Total:      len(data.Questions),
			Percentage: percentage(data.CurrentQuestionIndex, len(data.Questions)),
		},
	}, nil
}

// GeneratePath derives the overall level and gap list, generates the
// learning path, and completes the session. Retrying after completion
// returns the already-generated path's id.
func (w *Workflow) GeneratePath(ctx context.Context, sessionID string) (string, error) {
	data, err := w.loadSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if data.Phase == PhaseCompleted {
		existing, err := w.GetPath(ctx, sessionID)
		if err == nil {
			return existing.ID, nil
		}
		// Phase says completed but no path stored — fall through and
		// regenerate.
	}

	overallLevel := assessment.DetermineOverallLevel(data.KnowledgeLevels)
	gaps := assessment.IdentifyKnowledgeGaps(data.Goal, data.KnowledgeLevels)

	path, err := w.paths.GeneratePath(ctx, sessionID, data.Goal, overallLevel, gaps)
	if err != nil {
		return "", fmt.Errorf("generate learning path: %w", err)
	}

	if err := w.putJSON(ctx, sessionID, keyLearningPath, path); err != nil {
		return "", err
	}

	data.Phase = PhaseCompleted
	if err := w.putJSON(ctx, sessionID, keySessionData, data); err != nil {
		return "", err
	}

	return path.ID, nil
}

// GetPath returns the generated learning path. Reads the stored record,
// so repeated calls return identical content.
func (w *Workflow) GetPath(ctx context.Context, sessionID string) (*pathgen.LearningPath, error) {
	records, err := w.store.Get(ctx, sessionID, keyLearningPath, 1)
	if err != nil {
		return nil, fmt.Errorf("load learning path: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrPathNotFound
	}

	var path pathgen.LearningPath
	if err := json.Unmarshal([]byte(records[0].Content), &path); err != nil {
		return nil, fmt.Errorf("decode learning path: %w", err)
	}
	return &path, nil
}

// loadSession reads the most recent SessionData record.
func (w *Workflow) loadSession(ctx context.Context, sessionID string) (*SessionData, error) {
	records, err := w.store.Get(ctx, sessionID, keySessionData, 1)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrSessionNotFound
	}

	var data SessionData
	if err := json.Unmarshal([]byte(records[0].Content), &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &data, nil
}

func (w *Workflow) putJSON(ctx context.Context, sessionID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := w.store.Put(ctx, sessionID, key, string(raw)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func percentage(current, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(total) * 100))
}
