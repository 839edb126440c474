package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harukit/mekiki/internal/cli"
	"github.com/harukit/mekiki/internal/taxonomy"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	var (
		builtin bool
		flat    bool
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the classification tree",
		Long: `Display the category classification tree. The configured category
source is fetched when one is set, falling back to the built-in tree when
the fetch fails; --builtin skips the fetch. --flat prints the flattened
code/path list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index := taxonomy.NewIndex(taxonomy.DefaultTree())
			if !builtin {
				index = loadIndex(cmd.Context())
			}

			if flat {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				defer func() { _ = w.Flush() }()

				fmt.Fprintf(w, "%s\t%s\n", cli.BoldStyle.Render("Code"), cli.BoldStyle.Render("Path"))
				for _, entry := range index.Flatten() {
					fmt.Fprintf(w, "%s\t%s\n", entry.Code, entry.Label)
				}
				return nil
			}

			for _, root := range index.Roots() {
				fmt.Printf("%s %s\n", cli.BoldStyle.Render(root.Code), root.Label)
				for _, child := range root.Children {
					fmt.Printf("  %s %s\n", cli.SubtleStyle.Render(child.Code), child.Label)
					for _, leaf := range child.Children {
						fmt.Printf("    %s %s\n", cli.SubtleStyle.Render(leaf.Code), leaf.Label)
					}
				}
			}
			fmt.Println()
			fmt.Println(cli.SubtleStyle.Render(strings.TrimSpace(fmt.Sprintf("tree version %d", index.Version()))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, "show the built-in tree without fetching the category source")
	cmd.Flags().BoolVar(&flat, "flat", false, "print the flattened code/path list")

	return cmd
}
