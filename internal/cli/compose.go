package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
	"github.com/photosheet/photosheet/pkg/pipeline"
	"github.com/photosheet/photosheet/pkg/profile"
)

// composeOpts holds the command-line flags for the compose command.
type composeOpts struct {
	output       string // output directory for collage sheets
	addFilenames bool   // overlay file names on each photo
	seed         uint64 // selection seed, honored only when the flag is set
	borderWidth  int    // white border inside each cell, in pixels
	font         string // preferred overlay font name
	profilePath  string // print profile TOML file
	noCache      bool   // bypass the dimension cache
}

// composeCommand creates the compose command, the main entry point of the tool.
//
// Default options:
//   - output: "collages" in the working directory
//   - profile: built-in A3 landscape profile
//   - seed: random per run (pass --seed for reproducible selection)
func (c *CLI) composeCommand() *cobra.Command {
	opts := composeOpts{output: pipeline.DefaultOutputDir}

	cmd := &cobra.Command{
		Use:   "compose <folder>",
		Short: "Compose a folder of photos into print-ready collage sheets",
		Long: `Compose a folder of photos into up to twelve print-ready collage sheets.

Photos are classified by orientation and drawn without replacement: portrait
photos fill 2x3 grids, landscape photos fill 2x2 grids, and when neither pool
can fill its own grid the remaining photos share a mixed sheet. Slots that
cannot be filled are skipped, never padded.

Examples:
  photosheet compose ./vacation                    # Write ./collages
  photosheet compose ./vacation -o ./prints        # Custom output directory
  photosheet compose ./vacation --add-filenames    # Label each photo
  photosheet compose ./vacation --seed 42          # Reproducible selection
  photosheet compose ./vacation --profile a3.toml  # Custom print profile`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := resolveProfile(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runCompose(cmd.Context(), args[0], prof, &opts, cmd.Flags().Changed("seed"))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory for collage sheets")
	cmd.Flags().BoolVar(&opts.addFilenames, "add-filenames", false, "overlay each photo with its file name")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible photo selection")
	cmd.Flags().IntVar(&opts.borderWidth, "border-width", 0, "white border inside each cell, in pixels")
	cmd.Flags().StringVar(&opts.font, "font", "", "preferred overlay font (embedded fallback if unavailable)")
	cmd.Flags().StringVar(&opts.profilePath, "profile", "", "print profile TOML file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the dimension cache")

	return cmd
}

// resolveProfile loads the print profile and applies flag overrides on top.
// Flags beat profile values beat built-in defaults; an override applies only
// when its flag was actually passed, so profile settings survive unset flags.
func resolveProfile(cmd *cobra.Command, opts *composeOpts) (profile.Profile, error) {
	if opts.borderWidth < 0 {
		return profile.Profile{}, apperrors.New(apperrors.ErrCodeInvalidOptions,
			"border width must be zero or positive, got %d", opts.borderWidth)
	}

	prof := profile.Default()
	if opts.profilePath != "" {
		loaded, err := profile.Load(opts.profilePath)
		if err != nil {
			return profile.Profile{}, err
		}
		prof = loaded
	}

	if cmd.Flags().Changed("border-width") {
		prof.BorderWidth = opts.borderWidth
	}
	if cmd.Flags().Changed("font") {
		prof.Overlay.Font = opts.font
	}
	return prof, nil
}

// runCompose executes the pipeline and prints the per-slot summary.
func (c *CLI) runCompose(ctx context.Context, folder string, prof profile.Profile, opts *composeOpts, seedSet bool) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	summary, err := runner.Execute(ctx, pipeline.Options{
		Folder:       folder,
		OutputDir:    opts.output,
		AddFilenames: opts.addFilenames,
		Profile:      prof,
		Seed:         opts.seed,
		SeedSet:      seedSet,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Composed %d of %d collages", summary.Written, len(summary.Results)))

	printNewline()
	fmt.Println(summaryTable(summary.Results))
	if len(summary.Unreadable) > 0 {
		printWarning("%d unreadable files were excluded during the scan", len(summary.Unreadable))
	}
	if summary.Written == 0 {
		printInfo("No collages written; the slot reasons above explain why")
	}
	printKeyValue("Output", opts.output)
	printKeyValue("Seed", strconv.FormatUint(summary.Seed, 10))
	printNextStep("Reproduce this run", fmt.Sprintf("photosheet compose %s --seed %d", folder, summary.Seed))
	return nil
}
