package main

import (
	"fmt"
	"strings"

	"github.com/harukit/mekiki/internal/cli"
	"github.com/spf13/cobra"
)

func suggestCategoryCmd() *cobra.Command {
	var (
		flags draftFlags
		hint  string
	)

	cmd := &cobra.Command{
		Use:   "suggest-category",
		Short: "Suggest a category for a listing",
		Long: `Suggest a category code from the listing text using the ordered keyword
rule table, or from an image-analysis hint label with --hint. No suggestion
is made when the match equals the already-selected category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assessor, err := buildAssessor(cmd.Context(), false)
			if err != nil {
				return err
			}

			if hint != "" {
				code, label, ok := assessor.SuggestCategoryFromHint(hint)
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("No category matches that hint."))
					return nil
				}
				fmt.Printf("%s %s  %s\n", cli.BoldStyle.Render(code), label, cli.SubtleStyle.Render("(from hint)"))
				return nil
			}

			draft, err := flags.draft()
			if err != nil {
				return err
			}
			if strings.TrimSpace(draft.SearchText()) == "" {
				return fmt.Errorf("provide --title/--description text or --hint")
			}

			code, label, ok := assessor.SuggestCategory(draft)
			if !ok {
				fmt.Println(cli.SubtleStyle.Render("No suggestion (no rule matched, or it matches the selected category)."))
				return nil
			}
			fmt.Printf("%s %s\n", cli.BoldStyle.Render(code), label)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&hint, "hint", "", "image-analysis hint label to map to a category")

	return cmd
}

func suggestTagsCmd() *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "suggest-tags",
		Short: "Suggest tags for a listing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			assessor, err := buildAssessor(cmd.Context(), false)
			if err != nil {
				return err
			}

			draft, err := flags.draft()
			if err != nil {
				return err
			}

			tags := assessor.SuggestTags(draft)
			if len(tags) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No tags suggested."))
				return nil
			}
			fmt.Println(strings.Join(tags, ", "))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func suggestDescriptionCmd() *cobra.Command {
	var (
		flags draftFlags
		file  string
	)

	cmd := &cobra.Command{
		Use:   "suggest-description",
		Short: "Ask the AI service for an improved description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			assessor, err := buildAssessor(ctx, true)
			if err != nil {
				return err
			}

			draft, err := loadDraft(&flags, file)
			if err != nil {
				return err
			}

			sug, err := assessor.SuggestDescription(ctx, draft)
			if err != nil {
				return fmt.Errorf("description suggestion failed: %w", err)
			}
			if sug == nil || sug.Description == "" {
				fmt.Println(cli.SubtleStyle.Render("No suggestion available."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Suggested description"))
			fmt.Println(sug.Description)
			if len(sug.Highlights) > 0 {
				fmt.Println()
				fmt.Printf("%s %s\n", cli.BoldStyle.Render("Highlights:"), strings.Join(sug.Highlights, ", "))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "read the draft from a JSON file")

	return cmd
}
