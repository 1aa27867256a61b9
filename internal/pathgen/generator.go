package pathgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learnloop/learnloop/internal/content"
	"github.com/learnloop/learnloop/internal/llm"
)

// Generator builds learning paths by combining LLM-proposed topic
// structure with video lookup. Like the assessment engine, it never fails
// outright: module generation falls back to a deterministic gap-driven
// structure, so every session ends with a non-empty path.
type Generator struct {
	provider llm.Provider
	lookup   content.Lookup
	cfg      Config
}

// NewGenerator creates a path generator. provider may be nil, in which
// case only the deterministic fallback runs.
func NewGenerator(provider llm.Provider, lookup content.Lookup, cfg Config) *Generator {
	return &Generator{provider: provider, lookup: lookup, cfg: cfg}
}

// GeneratePath assembles the LearningPath record for a session. Pure
// composition over GenerateModules: fresh id, totalVideos summed across
// modules.
func (g *Generator) GeneratePath(ctx context.Context, sessionID, goal, knowledgeLevel string, gaps []string) (*LearningPath, error) {
	modules, err := g.GenerateModules(ctx, goal, knowledgeLevel, gaps)
	if err != nil {
		return nil, err
	}

	totalVideos := 0
	for _, m := range modules {
		totalVideos += len(m.Videos)
	}

	return &LearningPath{
		ID:             "path-" + uuid.NewString(),
		SessionID:      sessionID,
		Goal:           goal,
		KnowledgeLevel: knowledgeLevel,
		Modules:        modules,
		TotalVideos:    totalVideos,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// moduleTemplate is the raw LLM module proposal before video lookup.
type moduleTemplate struct {
	Topic       string `json:"topic"`
	Explanation string `json:"explanation"`
	Order       int    `json:"order"`
}

// GenerateModules produces the ordered module list. Primary path: LLM
// topic structure plus per-topic video lookup. Fallback: one module per
// gap, then a single main module chosen by goal keyword.
func (g *Generator) GenerateModules(ctx context.Context, goal, knowledgeLevel string, gaps []string) ([]Module, error) {
	templates, err := g.generateTemplates(ctx, goal, knowledgeLevel, gaps)
	if err != nil {
		return g.defaultModules(ctx, goal, gaps)
	}

	modules := make([]Module, 0, len(templates))
	for _, t := range templates {
		videos, err := g.searchVideos(ctx, t.Topic)
		if err != nil {
			return nil, err
		}
		modules = append(modules, Module{
			ID:          fmt.Sprintf("module-%d", t.Order),
			Order:       t.Order,
			Topic:       t.Topic,
			Explanation: t.Explanation,
			Videos:      videos,
		})
	}

	return modules, nil
}

func (g *Generator) generateTemplates(ctx context.Context, goal, knowledgeLevel string, gaps []string) ([]moduleTemplate, error) {
	if g.provider == nil {
		return nil, &llm.ErrProviderUnavailable{}
	}

	ctx = llm.WithPurpose(ctx, "module-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		Prompt:      buildModulesPrompt(goal, knowledgeLevel, gaps),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	raw := []byte(llm.ExtractJSON(resp.Text))
	if err := llm.ValidatePayload(ModulesSchema, raw); err != nil {
		return nil, err
	}

	var templates []moduleTemplate
	if err := json.Unmarshal(raw, &templates); err != nil {
		return nil, err
	}

	return templates, nil
}

// defaultModules builds the deterministic fallback structure: gap modules
// in gap order, then exactly one main module for the goal itself.
func (g *Generator) defaultModules(ctx context.Context, goal string, gaps []string) ([]Module, error) {
	var modules []Module
	order := 1

	for _, gap := range gaps {
		videos, err := g.searchVideos(ctx, gap)
		if err != nil {
			return nil, err
		}
		modules = append(modules, Module{
			ID:          fmt.Sprintf("module-%d", order),
			Order:       order,
			Topic:       gap,
			Explanation: fmt.Sprintf("Foundation knowledge needed for your goal: %s", goal),
			Videos:      videos,
		})
		order++
	}

	mainTopic := mainTopicFor(goal)
	videos, err := g.searchVideos(ctx, mainTopic)
	if err != nil {
		return nil, err
	}
	modules = append(modules, Module{
		ID:          fmt.Sprintf("module-%d", order),
		Order:       order,
		Topic:       mainTopic,
		Explanation: fmt.Sprintf("Core content for: %s", goal),
		Videos:      videos,
	})

	return modules, nil
}

// mainTopicFor picks the fallback main-module topic by keyword
// containment. Check order matters: vercel before react before deploy.
func mainTopicFor(goal string) string {
	lowerGoal := strings.ToLower(goal)
	switch {
	case strings.Contains(lowerGoal, "vercel"):
		return "vercel-basics"
	case strings.Contains(lowerGoal, "react"):
		return "react-basics"
	case strings.Contains(lowerGoal, "deploy"):
		return "deployment-basics"
	default:
		return "general"
	}
}

func (g *Generator) searchVideos(ctx context.Context, topic string) ([]content.Video, error) {
	videos, err := g.lookup.SearchByTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("search videos for %q: %w", topic, err)
	}
	if len(videos) > MaxVideosPerModule {
		videos = videos[:MaxVideosPerModule]
	}
	return videos, nil
}
