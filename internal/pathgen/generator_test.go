package pathgen

import (
	"context"
	"errors"
	"testing"

	"github.com/learnloop/learnloop/internal/content"
	"github.com/learnloop/learnloop/internal/llm"
)

func testLookup(t *testing.T) content.Lookup {
	t.Helper()
	c, err := content.NewCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

// failingLookup simulates a broken video backend.
type failingLookup struct{}

func (failingLookup) SearchByTopic(context.Context, string) ([]content.Video, error) {
	return nil, errors.New("lookup backend down")
}

func modulesJSON() string {
	return "```json\n" + `[
  {"topic": "git-basics", "explanation": "Version control first.", "order": 1},
  {"topic": "vercel-basics", "explanation": "Then the platform.", "order": 2}
]` + "\n```"
}

func TestGenerateModules_FromLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: modulesJSON()})
	g := NewGenerator(mock, testLookup(t), DefaultConfig())

	modules, err := g.GenerateModules(context.Background(), "Learn Vercel", "beginner", []string{"git-basics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0].ID != "module-1" || modules[0].Topic != "git-basics" {
		t.Fatalf("unexpected first module: %+v", modules[0])
	}
	if modules[1].ID != "module-2" || modules[1].Order != 2 {
		t.Fatalf("unexpected second module: %+v", modules[1])
	}
	for _, m := range modules {
		if len(m.Videos) == 0 {
			t.Errorf("module %s has no videos", m.ID)
		}
		if len(m.Videos) > MaxVideosPerModule {
			t.Errorf("module %s exceeds the video cap: %d", m.ID, len(m.Videos))
		}
	}
}

func TestGenerateModules_FallbackStructure(t *testing.T) {
	g := NewGenerator(nil, testLookup(t), DefaultConfig())

	modules, err := g.GenerateModules(context.Background(), "I want to deploy on Vercel", "beginner",
		[]string{"deployment-basics", "git-basics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two gap modules plus one main module.
	if len(modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(modules))
	}
	if modules[0].Topic != "deployment-basics" || modules[1].Topic != "git-basics" {
		t.Fatalf("gap modules out of order: %+v", modules)
	}
	if modules[2].Topic != "vercel-basics" {
		t.Fatalf("expected vercel-basics main module, got: %s", modules[2].Topic)
	}
	for i, m := range modules {
		if m.Order != i+1 {
			t.Errorf("module %d has order %d", i, m.Order)
		}
	}
}

func TestGenerateModules_FallbackWithNoGaps(t *testing.T) {
	g := NewGenerator(nil, testLookup(t), DefaultConfig())

	modules, err := g.GenerateModules(context.Background(), "master vercel", "advanced", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 1 {
		t.Fatalf("expected exactly one main module, got %d", len(modules))
	}
	if modules[0].Topic != "vercel-basics" || modules[0].Order != 1 {
		t.Fatalf("unexpected module: %+v", modules[0])
	}
}

func TestGenerateModules_FallbackOnMalformedLLMOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Sure! Here's a great learning plan for you."})
	g := NewGenerator(mock, testLookup(t), DefaultConfig())

	modules, err := g.GenerateModules(context.Background(), "deploy a site", "beginner", []string{"git-basics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("expected gap module plus main module, got %d", len(modules))
	}
	if modules[1].Topic != "deployment-basics" {
		t.Fatalf("expected deployment-basics main module, got: %s", modules[1].Topic)
	}
}

func TestMainTopicFor(t *testing.T) {
	cases := []struct {
		goal string
		want string
	}{
		{"deploy my app to Vercel", "vercel-basics"}, // vercel outranks deploy
		{"learn React", "react-basics"},
		{"deploy anywhere", "deployment-basics"},
		{"learn to cook", "general"},
	}
	for _, tc := range cases {
		if got := mainTopicFor(tc.goal); got != tc.want {
			t.Errorf("mainTopicFor(%q) = %s, want %s", tc.goal, got, tc.want)
		}
	}
}

func TestGenerateModules_LookupErrorPropagates(t *testing.T) {
	g := NewGenerator(nil, failingLookup{}, DefaultConfig())

	_, err := g.GenerateModules(context.Background(), "learn vercel", "beginner", nil)
	if err == nil {
		t.Fatal("expected lookup error to propagate")
	}
}

func TestGeneratePath(t *testing.T) {
	g := NewGenerator(nil, testLookup(t), DefaultConfig())

	path, err := g.GeneratePath(context.Background(), "sess-1", "Learn Vercel deployment", "beginner",
		[]string{"deployment-basics", "git-basics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path.ID == "" || path.ID[:5] != "path-" {
		t.Fatalf("unexpected path id: %s", path.ID)
	}
	if path.SessionID != "sess-1" {
		t.Errorf("unexpected session id: %s", path.SessionID)
	}
	if path.KnowledgeLevel != "beginner" {
		t.Errorf("unexpected knowledge level: %s", path.KnowledgeLevel)
	}
	if len(path.Modules) == 0 {
		t.Fatal("expected modules")
	}

	sum := 0
	for _, m := range path.Modules {
		sum += len(m.Videos)
	}
	if path.TotalVideos != sum {
		t.Errorf("totalVideos = %d, want %d", path.TotalVideos, sum)
	}
	if path.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}
