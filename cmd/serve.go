package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/assessment"
	"github.com/learnloop/learnloop/internal/content"
	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/memory"
	"github.com/learnloop/learnloop/internal/pathgen"
	"github.com/learnloop/learnloop/internal/server"
	"github.com/learnloop/learnloop/internal/workflow"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; env vars already set take precedence.
		_ = godotenv.Load()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = ":8087"
			if p := os.Getenv("PORT"); p != "" {
				addr = ":" + p
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		store, err := memory.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open memory store: %w", err)
		}
		defer store.Close()

		// The workflow is fully functional without a provider: every
		// generative step has a deterministic fallback.
		var provider llm.Provider
		p, err := llm.NewProviderFromEnv(context.Background(), store.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to deterministic question battery and scoring.")
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

		e := server.New(flow)
		fmt.Printf("learnloop listening on %s\n", addr)
		return e.Start(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8087, or :$PORT)")
}
