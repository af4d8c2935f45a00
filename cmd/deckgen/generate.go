package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"studydeck/internal/config"
	"studydeck/internal/handlers"
	"studydeck/internal/notes"
	"studydeck/internal/service"
)

func newGenerateCmd(conf func() *config.Config) *cobra.Command {
	var (
		title          string
		legacyHeadings bool
	)

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate flashcards from a note file or stdin",
		Long: `Generate reads a note from the given file, or from stdin when no file is
given, and prints the flashcards as JSON in the same shape the API returns.

For files, frontmatter is stripped and the title is taken from frontmatter,
the first heading, or the filename unless --title is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				content []byte
				err     error
			)
			if len(args) == 1 {
				content, err = os.ReadFile(args[0])
			} else {
				content, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read note: %w", err)
			}

			body := string(content)
			if len(args) == 1 {
				note := notes.Parse(content, args[0])
				body = note.Body
				if title == "" {
					title = note.Title
				}
			}

			svc := service.NewFlashcardService(extractorFor(conf(), legacyHeadings), nil)
			resp, err := svc.Generate(cmd.Context(), service.GenerateRequest{
				Content: &body,
				Title:   title,
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err != nil {
				_ = enc.Encode(handlers.ErrorResponse{Success: false, Error: "Internal Server error"})
				return err
			}

			return enc.Encode(handlers.GenerateResponse{
				Success:    true,
				Flashcards: resp.Flashcards,
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "note title used as the starting section")
	cmd.Flags().BoolVar(&legacyHeadings, "legacy-headings", false, "clear the section on heading lines instead of replacing it")

	return cmd
}
