package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harukit/mekiki/internal/cli"
	"github.com/harukit/mekiki/internal/engine"
	"github.com/harukit/mekiki/internal/model"
	"github.com/harukit/mekiki/internal/service"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type draftFlags struct {
	title       string
	description string
	category    string
	condition   string
	tags        []string
	price       int64
	images      int
	imageDesc   string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "listing title")
	cmd.Flags().StringVar(&f.description, "description", "", "listing description")
	cmd.Flags().StringVar(&f.category, "category", "", "category code")
	cmd.Flags().StringVar(&f.condition, "condition", "", "item condition (new, good, fair, poor)")
	cmd.Flags().Int64Var(&f.price, "price", 0, "listing price")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "listing tags")
	cmd.Flags().IntVar(&f.images, "images", 0, "number of images")
	cmd.Flags().StringVar(&f.imageDesc, "image-description", "", "externally produced summary of the listing photos")
}

func (f *draftFlags) draft() (model.ListingDraft, error) {
	condition := model.Condition(f.condition)
	if f.condition != "" && !condition.Valid() {
		return model.ListingDraft{}, fmt.Errorf("invalid condition %q (expected new, good, fair, or poor)", f.condition)
	}
	return model.ListingDraft{
		Title:            f.title,
		Description:      f.description,
		CategoryCode:     f.category,
		Condition:        condition,
		Price:            f.price,
		Tags:             f.tags,
		ImageCount:       f.images,
		ImageDescription: f.imageDesc,
	}, nil
}

func assessCmd() *cobra.Command {
	var (
		flags    draftFlags
		file     string
		dir      string
		useAI    bool
		save     bool
		asJSON   bool
		noProfit bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess a listing draft for risk",
		Long: `Run the risk assessment pipeline over a listing draft given as flags,
a JSON file, or a directory of JSON files (batch mode). Local heuristics
always run; --ai adds AI-backed refinement with graceful fallback.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			assessor, err := buildAssessor(ctx, useAI)
			if err != nil {
				return err
			}

			if dir != "" {
				return assessBatch(ctx, assessor, dir, useAI, save)
			}

			draft, err := loadDraft(&flags, file)
			if err != nil {
				return err
			}
			if draft.CategoryCode != "" && !assessor.Index().Contains(draft.CategoryCode) {
				fmt.Fprintln(os.Stderr, cli.SubtleStyle.Render(
					fmt.Sprintf("note: category code %q is not in the classification tree", draft.CategoryCode)))
			}

			evaluator := engine.NewEvaluator(assessor, nil)
			result := evaluator.EvaluateSync(ctx, draft, useAI)

			if save {
				if err := saveResult(ctx, assessor, draft, result); err != nil {
					return err
				}
			}

			if asJSON {
				return printJSON(result)
			}
			renderResult(draft, result, !noProfit)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "read the draft from a JSON file")
	cmd.Flags().StringVar(&dir, "dir", "", "assess every *.json draft in a directory")
	cmd.Flags().BoolVar(&useAI, "ai", false, "refine the assessment with the AI service")
	cmd.Flags().BoolVar(&save, "save", false, "record the assessment in history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	cmd.Flags().BoolVar(&noProfit, "no-profit", false, "skip the seller proceeds preview")

	return cmd
}

func loadDraft(flags *draftFlags, file string) (model.ListingDraft, error) {
	if file == "" {
		return flags.draft()
	}

	data, err := os.ReadFile(file) //nolint:gosec
	if err != nil {
		return model.ListingDraft{}, fmt.Errorf("failed to read draft file: %w", err)
	}

	var draft model.ListingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return model.ListingDraft{}, fmt.Errorf("failed to parse draft file %s: %w", file, err)
	}
	return draft, nil
}

func assessBatch(ctx context.Context, assessor *engine.Assessor, dir string, useAI, save bool) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}
	if len(matches) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No draft files found in " + dir))
		return nil
	}
	sort.Strings(matches)

	bar := progressbar.NewOptions(len(matches),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Assessing drafts...[reset]"),
	)

	evaluator := engine.NewEvaluator(assessor, nil)

	type batchRow struct {
		file    string
		title   string
		overall float64
		source  model.RiskSource
		warns   int
	}
	rows := make([]batchRow, 0, len(matches))

	for _, path := range matches {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		draft, loadErr := loadDraft(nil, path)
		if loadErr != nil {
			fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render(loadErr.Error()))
			_ = bar.Add(1)
			continue
		}

		result := evaluator.EvaluateSync(ctx, draft, useAI)
		if save {
			if saveErr := saveResult(ctx, assessor, draft, result); saveErr != nil {
				return saveErr
			}
		}

		rows = append(rows, batchRow{
			file:    filepath.Base(path),
			title:   draft.Title,
			overall: result.Overall,
			source:  result.Source,
			warns:   len(result.Warnings),
		})
		_ = bar.Add(1)
	}

	fmt.Println()
	for _, row := range rows {
		fmt.Printf("%s  %s  %s  %s  %d warnings\n",
			cli.BoldStyle.Render(row.file),
			row.title,
			cli.FormatScore(row.overall),
			cli.SubtleStyle.Render(string(row.source)),
			row.warns,
		)
	}
	return nil
}

func renderResult(draft model.ListingDraft, result model.RiskAssessmentResult, withProfit bool) {
	fmt.Println(cli.TitleStyle.Render("Risk assessment"))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Overall:"), cli.FormatScore(result.Overall))
	fmt.Printf("%s %s\n\n", cli.BoldStyle.Render("Source:"), cli.SubtleStyle.Render(string(result.Source)))

	for _, axis := range result.Axes {
		line := fmt.Sprintf("%-22s %s", axis.Label, cli.FormatScore(axis.Score))
		if axis.Hint != "" {
			line += "  " + cli.SubtleStyle.Render(axis.Hint)
		}
		fmt.Println(line)
	}

	if len(result.Warnings) > 0 {
		fmt.Println()
		fmt.Println(cli.WarningStyle.Render("Warnings:"))
		for _, w := range result.Warnings {
			fmt.Println("  - " + w)
		}
	}

	if withProfit && draft.Price > 0 {
		fee, shipping, profit := engine.ProfitPreview(draft.Price)
		fmt.Println()
		fmt.Println(cli.TitleStyle.Render("Proceeds preview"))
		fmt.Printf("price %d  fee %d  shipping %d  %s %d\n",
			draft.Price, fee, shipping, cli.BoldStyle.Render("proceeds"), profit)
	}
}

func saveResult(ctx context.Context, assessor *engine.Assessor, draft model.ListingDraft, result model.RiskAssessmentResult) error {
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eval, _ := assessor.EvaluatePrice(ctx, draft)
	return persistAssessment(ctx, store, draft, result, eval.Verdict)
}

func persistAssessment(ctx context.Context, store service.Storage, draft model.ListingDraft, result model.RiskAssessmentResult, verdict model.Verdict) error {
	record := model.AssessmentRecord{
		ListingHash: draft.Hash(),
		Title:       draft.Title,
		Verdict:     string(verdict),
		Result:      result,
	}
	if err := store.SaveAssessment(ctx, &record); err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// trim long free text for table rendering.
func truncate(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n-1]) + "…"
}
