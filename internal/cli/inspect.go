package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/photosheet/photosheet/pkg/collage"
	"github.com/photosheet/photosheet/pkg/pipeline"
)

// inspectCommand creates the inspect command for scanning without composing.
func (c *CLI) inspectCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect <folder>",
		Short: "Scan a folder and report its photo pools",
		Long: `Scan a folder, classify every supported photo by orientation, and report
the resulting pools without composing anything.

The report shows how many photos would land in the portrait and landscape
pools, which files could not be read, and which grid the first collage
sheet would use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the dimension cache")

	return cmd
}

// runInspect scans the folder and prints the pool breakdown.
func (c *CLI) runInspect(ctx context.Context, folder string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", folder))
	spinner.Start()
	pools, unreadable, err := runner.Scan(ctx, folder)
	if err != nil {
		spinner.StopWithError("Scan failed")
		return err
	}
	spinner.Stop()

	printNewline()
	fmt.Println(StyleTitle.Render("Photo pools"))
	fmt.Println(poolTable(pools, len(unreadable)))
	for _, path := range unreadable {
		printDetail("unreadable: %s", path)
	}

	decision := collage.Decide(pools.Portrait.Len(), pools.Landscape.Len())
	if decision.Kind == collage.KindSkip {
		printWarning("Not enough photos for a collage (%d usable, at least %d needed)", pools.Total(), pipeline.MinimumImages)
		return nil
	}

	printInfo("First sheet would be a %s %dx%d grid", decision.Kind, decision.Grid.Rows, decision.Grid.Cols)
	printNextStep("Compose", fmt.Sprintf("photosheet compose %s", folder))
	return nil
}
