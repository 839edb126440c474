package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harukit/mekiki/internal/cli"
	"github.com/harukit/mekiki/internal/common"
	"github.com/harukit/mekiki/internal/service"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var (
		hash   string
		limit  int
		offset int
		latest bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded assessments",
		Long: `Display assessment history, newest first. --hash filters to one listing;
--latest shows only that listing's most recent assessment in full.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if latest && hash == "" {
				return fmt.Errorf("--latest requires --hash")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if latest {
				return showLatest(ctx, store, hash)
			}

			records, err := store.GetAssessments(ctx, service.AssessmentFilter{
				ListingHash: hash,
				Limit:       limit,
				Offset:      offset,
			})
			if err != nil {
				return fmt.Errorf("failed to list assessments: %w", err)
			}

			if len(records) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No assessments recorded. Run 'mekiki assess --save' first."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("When"),
				cli.BoldStyle.Render("Title"),
				cli.BoldStyle.Render("Overall"),
				cli.BoldStyle.Render("Source"),
				cli.BoldStyle.Render("Warnings"))

			for _, rec := range records {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
					rec.ID,
					rec.CreatedAt.Format("2006-01-02 15:04"),
					truncate(rec.Title, 32),
					cli.FormatScore(rec.Result.Overall),
					rec.Result.Source,
					len(rec.Result.Warnings))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hash, "hash", "", "filter by listing hash")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum records to show")
	cmd.Flags().IntVar(&offset, "offset", 0, "records to skip")
	cmd.Flags().BoolVar(&latest, "latest", false, "show the most recent assessment for --hash")

	return cmd
}

func showLatest(ctx context.Context, store service.Storage, hash string) error {
	rec, err := store.GetLatestAssessment(ctx, hash)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Println(cli.SubtleStyle.Render("No assessment recorded for that listing yet."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load latest assessment: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render("Latest assessment"))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Title:"), rec.Title)
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("When:"), rec.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Overall:"), cli.FormatScore(rec.Result.Overall))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Source:"), cli.SubtleStyle.Render(string(rec.Result.Source)))
	if rec.Verdict != "" {
		fmt.Printf("%s %s\n", cli.BoldStyle.Render("Price verdict:"), cli.FormatVerdict(rec.Verdict))
	}

	for _, axis := range rec.Result.Axes {
		fmt.Printf("%-22s %s\n", axis.Label, cli.FormatScore(axis.Score))
	}
	if len(rec.Result.Warnings) > 0 {
		fmt.Println(cli.WarningStyle.Render("Warnings:"))
		for _, w := range rec.Result.Warnings {
			fmt.Println("  - " + w)
		}
	}
	return nil
}
