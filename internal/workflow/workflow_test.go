package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/learnloop/learnloop/internal/assessment"
	"github.com/learnloop/learnloop/internal/content"
	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/memory"
	"github.com/learnloop/learnloop/internal/pathgen"
)

// newTestWorkflow wires an in-memory store with deterministic fallbacks
// (nil provider) unless canned LLM responses are given.
func newTestWorkflow(t *testing.T, responses ...llm.MockResponse) *Workflow {
	t.Helper()

	var provider llm.Provider
	if len(responses) > 0 {
		provider = llm.NewMockProvider(responses...)
	}

	catalog, err := content.NewCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	return New(
		memory.NewInMemory(),
		assessment.NewEngine(provider, assessment.DefaultConfig()),
		pathgen.NewGenerator(provider, catalog, pathgen.DefaultConfig()),
	)
}

func TestCreateSession(t *testing.T) {
	w := newTestWorkflow(t)

	res, err := w.CreateSession(context.Background(), "Learn Vercel deployment")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if res.SessionID == "" {
		t.Fatal("expected session id")
	}
	if res.Phase != PhaseAssessment {
		t.Fatalf("expected assessment phase, got: %s", res.Phase)
	}
	if res.Message == "" {
		t.Error("expected a message")
	}
}

func TestCreateSession_EmptyGoal(t *testing.T) {
	w := newTestWorkflow(t)

	_, err := w.CreateSession(context.Background(), "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got: %T %v", err, err)
	}
}

func TestGetSession(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Git")

	view, err := w.GetSession(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if view.Goal != "Learn Git" {
		t.Errorf("unexpected goal: %s", view.Goal)
	}
	if view.Phase != PhaseAssessment {
		t.Errorf("unexpected phase: %s", view.Phase)
	}
	if view.Progress.Current != 0 || view.Progress.Total != assessment.QuestionCount {
		t.Errorf("unexpected progress: %+v", view.Progress)
	}
}

func TestGetSession_Unknown(t *testing.T) {
	w := newTestWorkflow(t)

	_, err := w.GetSession(context.Background(), "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got: %v", err)
	}
}

func TestNextQuestion_WalksTheBattery(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Vercel deployment")
	sid := created.SessionID

	for i := 0; i < assessment.QuestionCount; i++ {
		next, err := w.NextQuestion(ctx, sid)
		if err != nil {
			t.Fatalf("next question %d: %v", i, err)
		}
		if next.Completed {
			t.Fatalf("unexpected completion at question %d", i)
		}
		if next.Question == nil {
			t.Fatalf("expected a question at index %d", i)
		}
		if next.Progress.Current != i+1 || next.Progress.Total != assessment.QuestionCount {
			t.Fatalf("unexpected progress: %+v", next.Progress)
		}

		// Read-only: asking again returns the same question.
		again, _ := w.NextQuestion(ctx, sid)
		if again.Question.ID != next.Question.ID {
			t.Fatalf("NextQuestion must not advance: %s vs %s", again.Question.ID, next.Question.ID)
		}

		res, err := w.SubmitAnswer(ctx, sid, next.Question.ID, "a short answer here please")
		if err != nil {
			t.Fatalf("submit answer %d: %v", i, err)
		}
		wantCompleted := i == assessment.QuestionCount-1
		if res.Completed != wantCompleted {
			t.Fatalf("question %d: completed = %v, want %v", i, res.Completed, wantCompleted)
		}
	}

	next, err := w.NextQuestion(ctx, sid)
	if err != nil {
		t.Fatalf("next question after completion: %v", err)
	}
	if !next.Completed {
		t.Fatal("expected completion after the full battery")
	}
	if next.Question != nil {
		t.Fatal("expected no question after completion")
	}
}

func TestNextQuestion_ProgressPercentage(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Git")
	next, _ := w.NextQuestion(ctx, created.SessionID)

	// 1 of 3 rounds to 33.
	if next.Progress.Percentage != 33 {
		t.Fatalf("percentage = %d, want 33", next.Progress.Percentage)
	}
}

func TestSubmitAnswer_Validation(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Git")

	_, err := w.SubmitAnswer(ctx, created.SessionID, "", "answer")
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	_, err = w.SubmitAnswer(ctx, created.SessionID, "q1", "")
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
}

func TestSubmitAnswer_UnknownQuestion(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Git")

	_, err := w.SubmitAnswer(ctx, created.SessionID, "q99", "some answer")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got: %v", err)
	}
}

func TestSubmitAnswer_FinalAnswerFlipsPhase(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Git")
	sid := created.SessionID

	answerAll(t, w, sid)

	view, err := w.GetSession(ctx, sid)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if view.Phase != PhaseGenerating {
		t.Fatalf("expected generating phase, got: %s", view.Phase)
	}
}

func TestGeneratePath_CompletesSession(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Vercel deployment")
	sid := created.SessionID
	answerAll(t, w, sid)

	pathID, err := w.GeneratePath(ctx, sid)
	if err != nil {
		t.Fatalf("generate path: %v", err)
	}
	if pathID == "" {
		t.Fatal("expected path id")
	}

	view, _ := w.GetSession(ctx, sid)
	if view.Phase != PhaseCompleted {
		t.Fatalf("expected completed phase, got: %s", view.Phase)
	}
}

func TestGeneratePath_RetryReturnsExistingPath(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Vercel deployment")
	sid := created.SessionID
	answerAll(t, w, sid)

	first, err := w.GeneratePath(ctx, sid)
	if err != nil {
		t.Fatalf("generate path: %v", err)
	}
	second, err := w.GeneratePath(ctx, sid)
	if err != nil {
		t.Fatalf("regenerate path: %v", err)
	}
	if first != second {
		t.Fatalf("retry must return the existing path id: %s vs %s", first, second)
	}
}

func TestGetPath_StableAcrossReads(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Vercel deployment")
	sid := created.SessionID
	answerAll(t, w, sid)

	if _, err := w.GeneratePath(ctx, sid); err != nil {
		t.Fatalf("generate path: %v", err)
	}

	a, err := w.GetPath(ctx, sid)
	if err != nil {
		t.Fatalf("get path: %v", err)
	}
	b, err := w.GetPath(ctx, sid)
	if err != nil {
		t.Fatalf("get path again: %v", err)
	}

	rawA, _ := json.Marshal(a)
	rawB, _ := json.Marshal(b)
	if string(rawA) != string(rawB) {
		t.Fatal("repeated reads must return identical content")
	}
}

func TestGetPath_BeforeGeneration(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, _ := w.CreateSession(ctx, "Learn Git")

	_, err := w.GetPath(ctx, created.SessionID)
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("expected ErrPathNotFound, got: %v", err)
	}
}

// TestEndToEnd drives a whole session with deterministic fallbacks:
// short answers leave every topic at level none, so the vercel goal
// yields both foundation gaps plus the main module.
func TestEndToEnd(t *testing.T) {
	w := newTestWorkflow(t)
	ctx := context.Background()

	created, err := w.CreateSession(ctx, "Learn Vercel deployment")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	sid := created.SessionID

	for {
		next, err := w.NextQuestion(ctx, sid)
		if err != nil {
			t.Fatalf("next question: %v", err)
		}
		if next.Completed {
			break
		}
		if _, err := w.SubmitAnswer(ctx, sid, next.Question.ID, "not sure"); err != nil {
			t.Fatalf("submit answer: %v", err)
		}
	}

	pathID, err := w.GeneratePath(ctx, sid)
	if err != nil {
		t.Fatalf("generate path: %v", err)
	}

	path, err := w.GetPath(ctx, sid)
	if err != nil {
		t.Fatalf("get path: %v", err)
	}
	if path.ID != pathID {
		t.Fatalf("path id mismatch: %s vs %s", path.ID, pathID)
	}
	if path.Goal != "Learn Vercel deployment" {
		t.Errorf("unexpected goal: %s", path.Goal)
	}
	if path.KnowledgeLevel != "beginner" {
		t.Errorf("unexpected knowledge level: %s", path.KnowledgeLevel)
	}

	// deployment-basics and git-basics gaps, then the vercel main module.
	if len(path.Modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(path.Modules))
	}
	topics := []string{"deployment-basics", "git-basics", "vercel-basics"}
	sum := 0
	for i, m := range path.Modules {
		if m.Order != i+1 {
			t.Errorf("module %d: order = %d", i, m.Order)
		}
		if m.Topic != topics[i] {
			t.Errorf("module %d: topic = %s, want %s", i, m.Topic, topics[i])
		}
		if len(m.Videos) == 0 {
			t.Errorf("module %d has no videos", i)
		}
		sum += len(m.Videos)
	}
	if path.TotalVideos != sum {
		t.Errorf("totalVideos = %d, want %d", path.TotalVideos, sum)
	}
}

// answerAll submits a short answer for every question in the battery.
func answerAll(t *testing.T, w *Workflow, sessionID string) {
	t.Helper()
	ctx := context.Background()

	for {
		next, err := w.NextQuestion(ctx, sessionID)
		if err != nil {
			t.Fatalf("next question: %v", err)
		}
		if next.Completed {
			return
		}
		if _, err := w.SubmitAnswer(ctx, sessionID, next.Question.ID, "just a little"); err != nil {
			t.Fatalf("submit answer: %v", err)
		}
	}
}
