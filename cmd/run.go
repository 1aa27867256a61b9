package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/assessment"
	"github.com/learnloop/learnloop/internal/content"
	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/memory"
	"github.com/learnloop/learnloop/internal/pathgen"
	"github.com/learnloop/learnloop/internal/workflow"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	moduleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an assessment session interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// A terminal session is throwaway: keep everything in memory.
		store := memory.NewInMemory()

		var provider llm.Provider
		p, err := llm.NewProviderFromEnv(ctx, store.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, dimStyle.Render("LLM provider not configured; using deterministic fallbacks."))
		} else {
			provider = p
		}

		catalog, err := content.NewCatalog()
		if err != nil {
			return fmt.Errorf("load video catalog: %w", err)
		}

		flow := workflow.New(
			store,
			assessment.NewEngine(provider, assessment.DefaultConfig()),
			pathgen.NewGenerator(provider, catalog, pathgen.DefaultConfig()),
		)

		in := bufio.NewScanner(os.Stdin)

		fmt.Println(titleStyle.Render("learnloop"))
		fmt.Print("What do you want to learn? ")
		if !in.Scan() {
			return nil
		}
		goal := strings.TrimSpace(in.Text())

		created, err := flow.CreateSession(ctx, goal)
		if err != nil {
			return err
		}
		fmt.Println(dimStyle.Render(created.Message))
		fmt.Println()

		for {
			next, err := flow.NextQuestion(ctx, created.SessionID)
			if err != nil {
				return err
			}
			if next.Completed {
				fmt.Println(dimStyle.Render(next.Message))
				break
			}

			fmt.Printf("%s %s\n",
				dimStyle.Render(fmt.Sprintf("[%d/%d]", next.Progress.Current, next.Progress.Total)),
				questionStyle.Render(next.Question.Question))
			fmt.Print("> ")
			if !in.Scan() {
				return nil
			}
			answer := strings.TrimSpace(in.Text())
			if answer == "" {
				answer = "no answer"
			}

			if _, err := flow.SubmitAnswer(ctx, created.SessionID, next.Question.ID, answer); err != nil {
				return err
			}
			fmt.Println()
		}

		if _, err := flow.GeneratePath(ctx, created.SessionID); err != nil {
			return err
		}
		path, err := flow.GetPath(ctx, created.SessionID)
		if err != nil {
			return err
		}

		renderPath(path)
		return nil
	},
}

func renderPath(path *pathgen.LearningPath) {
	fmt.Println()
	fmt.Println(titleStyle.Render("Your learning path"))
	fmt.Println(dimStyle.Render(fmt.Sprintf("Level: %s · %d videos", path.KnowledgeLevel, path.TotalVideos)))
	fmt.Println()

	for _, m := range path.Modules {
		fmt.Printf("%s %s\n", moduleStyle.Render(fmt.Sprintf("%d.", m.Order)), moduleStyle.Render(m.Topic))
		fmt.Println("   " + m.Explanation)
		for _, v := range m.Videos {
			fmt.Printf("   · %s %s\n", v.Title, dimStyle.Render("("+v.Duration+") "+v.URL))
		}
		fmt.Println()
	}
}
