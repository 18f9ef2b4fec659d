package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/builder-doctor/internal/version"
	"github.com/arthur-debert/builder-doctor/pkg/config"
	doctorerrors "github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/arthur-debert/builder-doctor/pkg/filesystem"
	"github.com/arthur-debert/builder-doctor/pkg/lint"
	"github.com/arthur-debert/builder-doctor/pkg/logging"
	"github.com/arthur-debert/builder-doctor/pkg/matcher"
	"github.com/arthur-debert/builder-doctor/pkg/output"
	"github.com/arthur-debert/builder-doctor/pkg/rules"
	"github.com/arthur-debert/builder-doctor/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options holds the global flags
type options struct {
	verbosity int
	verbose   bool
	dir       string
	color     string
}

// project is everything a command needs to work on one project directory
type project struct {
	fs       afero.Fs
	root     string
	cfg      *config.Config
	renderer *output.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "builder-doctor",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesCheck(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbosity", "v", MsgFlagVerbosity)
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", MsgFlagDir)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newRulesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesCheck(cmd, opts)
		},
	}
	cmd.AddCommand(newMatchCmd(opts))
	return cmd
}

func newMatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "match <path>...",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Example: MsgMatchExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesMatch(cmd, opts, args)
		},
	}
}

// runRulesCheck scans the project and prints the lint report. Findings never
// fail the command.
func runRulesCheck(cmd *cobra.Command, opts *options) error {
	defer logging.LogOperationStart(logging.GetLogger("cli.rules"), "rules check")()

	p, err := openProject(cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}

	result := rules.NewDiscoverer(p.fs, p.root, p.cfg.Paths.RuleFolders).Scan()
	if opts.verbose {
		if err := p.renderer.RenderJSON(result); err != nil {
			return err
		}
	}

	report := lint.NewEngine(p.fs, p.root, p.cfg.Rules).Lint(result)
	log.Info().
		Str("outcome", report.Outcome.String()).
		Int("problems", len(report.Problems)).
		Int("warnings", len(report.Warnings)).
		Int("infos", len(report.Infos)).
		Msg("Rules check finished")

	return p.renderer.Render(report)
}

func runRulesMatch(cmd *cobra.Command, opts *options, paths []string) error {
	defer logging.LogOperationStart(logging.GetLogger("cli.match"), "rules match")()

	p, err := openProject(cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}

	discovered := rules.NewDiscoverer(p.fs, p.root, p.cfg.Paths.RuleFolders).Discover()
	m := matcher.New(p.fs, p.root, discovered, p.cfg.Paths.IgnoreFiles)

	matches := make([]matcher.Match, 0, len(paths))
	for _, path := range paths {
		matches = append(matches, m.Match(path))
	}

	if opts.verbose {
		if err := p.renderer.RenderJSON(matches); err != nil {
			return err
		}
	}
	return p.renderer.RenderMatches(matches, m.Invalid())
}

// openProject resolves the project directory, loads its configuration and
// sets up the renderer for out
func openProject(out io.Writer, opts *options) (*project, error) {
	fs := filesystem.NewOS()

	root, err := resolveDir(fs, opts.dir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(fs, root)
	if err != nil {
		return nil, err
	}

	colorSetting := cfg.Output.Color
	if opts.color != "" {
		colorSetting = opts.color
	}
	mode, err := style.ParseColorMode(colorSetting)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("root", root).
		Str("color", mode.String()).
		Msg("Project opened")

	return &project{
		fs:       fs,
		root:     root,
		cfg:      cfg,
		renderer: output.NewRenderer(out, colorEnabled(mode, out)),
	}, nil
}

// resolveDir returns the absolute project directory, the working directory
// when dir is empty
func resolveDir(fs afero.Fs, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", doctorerrors.Wrapf(err, doctorerrors.ErrInvalidInput, MsgErrResolveDir, dir)
	}
	if !filesystem.IsDir(fs, abs) {
		return "", doctorerrors.Newf(doctorerrors.ErrNotFound, MsgErrNotDir, abs)
	}
	return abs, nil
}

// colorEnabled only auto-detects on real files; other writers get colour
// when asked for explicitly
func colorEnabled(mode style.ColorMode, out io.Writer) bool {
	if f, ok := out.(*os.File); ok {
		return mode.Enabled(f)
	}
	return mode == style.ColorAlways
}
