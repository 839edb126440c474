package main

import (
	"fmt"

	"github.com/harukit/mekiki/internal/cli"
	"github.com/harukit/mekiki/internal/engine"
	"github.com/spf13/cobra"
)

func priceCmd() *cobra.Command {
	var (
		flags  draftFlags
		file   string
		useAI  bool
		buyer  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Check a listing price against its market band",
		Long: `Evaluate the listing price against the AI-suggested price band (--ai)
or the static reference band. --buyer produces the buyer-facing fairness
summary instead of the seller-side evaluation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			assessor, err := buildAssessor(ctx, useAI)
			if err != nil {
				return err
			}

			draft, err := loadDraft(&flags, file)
			if err != nil {
				return err
			}

			if buyer {
				insight, insightErr := assessor.PriceInsight(ctx, draft)
				if insightErr != nil {
					return insightErr
				}
				if asJSON {
					return printJSON(insight)
				}
				body := fmt.Sprintf("%s %s\n%s %.0f (range %.0f - %.0f)",
					cli.BoldStyle.Render("Verdict:"), cli.FormatVerdict(string(insight.Verdict)),
					cli.BoldStyle.Render("Suggested:"), insight.Suggested, insight.Range.Min, insight.Range.Max)
				if insight.Reasoning != "" {
					body += "\n" + cli.SubtleStyle.Render(insight.Reasoning)
				}
				fmt.Println(cli.RenderBox("Price insight", body))
				return nil
			}

			eval, warnings := assessor.EvaluatePrice(ctx, draft)
			if asJSON {
				return printJSON(eval)
			}

			fmt.Println(cli.TitleStyle.Render("Price evaluation"))
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Verdict:"), cli.FormatVerdict(string(eval.Verdict)))
			fmt.Printf("%s %.0f (band %.0f - %.0f)\n",
				cli.BoldStyle.Render("Target:"), eval.Target, eval.Lower, eval.Upper)
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Price risk:"), cli.FormatScore(eval.Risk))
			if eval.Deviation > 0 {
				fmt.Printf("%s %.0f%%\n", cli.BoldStyle.Render("Deviation:"), eval.Deviation*100)
			}
			for _, w := range warnings {
				fmt.Println(cli.WarningStyle.Render("  - " + w))
			}

			if draft.Price > 0 {
				fee, shipping, profit := engine.ProfitPreview(draft.Price)
				fmt.Printf("\nfee %d  shipping %d  %s %d\n",
					fee, shipping, cli.BoldStyle.Render("proceeds"), profit)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "read the draft from a JSON file")
	cmd.Flags().BoolVar(&useAI, "ai", false, "use the AI-suggested price band")
	cmd.Flags().BoolVar(&buyer, "buyer", false, "produce the buyer-facing fairness summary")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")

	return cmd
}
