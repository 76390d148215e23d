package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	rasa "github.com/malhotra1432/rasa-1"
	"github.com/malhotra1432/rasa-1/internal/presentation/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the loaded training data",
	Long:  `Loads the importer chain and renders a summary of the combined domain, stories, and NLU data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		importer, err := loadImporter(cmd, logger)
		if err != nil {
			return fmt.Errorf("failed to load training data: %w", err)
		}

		ctx := cmd.Context()
		domain, err := importer.GetDomain(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch domain: %w", err)
		}
		stories, err := importer.GetStories(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch stories: %w", err)
		}
		nlu, err := importer.GetNLUData(ctx, "")
		if err != nil {
			return fmt.Errorf("failed to fetch nlu data: %w", err)
		}

		tui.PrintBanner(rasa.Version)

		var b strings.Builder
		b.WriteString("# Training Data Summary\n\n")
		b.WriteString("## Domain\n\n")
		fmt.Fprintf(&b, "- **Intents**: %d\n", len(domain.Intents))
		fmt.Fprintf(&b, "- **Entities**: %d\n", len(domain.Entities))
		fmt.Fprintf(&b, "- **Slots**: %d\n", len(domain.Slots))
		fmt.Fprintf(&b, "- **Responses**: %d\n", len(domain.Responses))
		fmt.Fprintf(&b, "- **Actions**: %d\n", len(domain.Actions))
		fmt.Fprintf(&b, "- **Forms**: %d\n\n", len(domain.Forms))

		if len(domain.Intents) > 0 {
			names := make([]string, 0, len(domain.Intents))
			for name := range domain.Intents {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintf(&b, "Intents: `%s`\n\n", strings.Join(names, "`, `"))
		}

		b.WriteString("## Stories\n\n")
		fmt.Fprintf(&b, "- **Story steps**: %d\n\n", len(stories.Steps))

		b.WriteString("## NLU\n\n")
		fmt.Fprintf(&b, "- **Examples**: %d\n", len(nlu.Examples))
		fmt.Fprintf(&b, "- **Retrieval intents**: %d\n", len(nlu.RetrievalIntents()))

		render := tui.NewRenderer()
		out, err := render(b.String())
		if err != nil {
			// Fall back to raw markdown when rendering fails.
			out = b.String()
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
