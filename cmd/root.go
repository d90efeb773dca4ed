package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/zksim/internal/config"
	"github.com/oakwood-commons/zksim/internal/formatter"
	"github.com/oakwood-commons/zksim/internal/shell"
	"github.com/oakwood-commons/zksim/pkg/logger"
	"github.com/oakwood-commons/zksim/pkg/settings"
)

var (
	configFile string
	debug      bool
	noColor    bool
	quiet      bool
	prompt     string
	treeStyle  string
	commands   []string

	showDefaults bool

	rootCtx = context.Background()
)

var (
	stdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Interactive simulator of a ZooKeeper-style node tree",
	Long: `zksim keeps an in-memory tree of named nodes addressed by slash paths and
reads commands from standard input: create, ls, get, set, delete, tree, stat,
find, export, help and exit. Nothing is persisted; the tree is lost on exit.`,
	Example: "\n  zksim\n  zksim -c 'create /jobs -s' -c 'create /jobs -s' -c tree\n  printf 'create /a hello -e\\nget /a\\n' | zksim\n",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		run := runSettings()
		lgr := logger.Get(run.MinLogLevel)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = settings.IntoContext(logger.WithLogger(context.Background(), lgr), run)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		ctx := rootCtx
		run, ok := settings.FromContext(ctx)
		if !ok {
			run = runSettings()
			ctx = settings.IntoContext(ctx, run)
		}
		logger.FromContext(ctx).V(1).Info("starting shell",
			"config_file", resolveConfigPath(configFile), "quiet", run.IsQuiet, "no_color", run.NoColor,
			"interactive", run.Interactive)

		sh := shell.New(shellOptions(run, cmd.OutOrStdout(), cfg))
		if len(run.Commands) > 0 {
			sh.ExecuteAll(ctx, run.Commands)
			return nil
		}
		return sh.Run(ctx, cmd.InOrStdin())
	},
}

// shellOptions maps the session settings onto the shell.
func shellOptions(run *settings.Run, out io.Writer, cfg config.Config) shell.Options {
	return shell.Options{
		Out:         out,
		Config:      cfg,
		NoColor:     run.NoColor,
		Quiet:       run.IsQuiet,
		Interactive: run.Interactive,
	}
}

// runSettings derives the session settings from flags and the terminal.
// Banner and prompt are only shown to an interactive user.
func runSettings() *settings.Run {
	run := settings.NewCliParams()
	// debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
	if debug {
		run.MinLogLevel = logger.DebugLevel
	}
	run.Commands = commands
	run.Interactive = stdinIsTerminal() && stdoutIsTerminal()
	run.IsQuiet = quiet || len(commands) > 0 || !stdinIsTerminal()
	run.NoColor = noColor || os.Getenv("NO_COLOR") != "" || !stdoutIsTerminal()
	return run
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print zksim version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)",
		settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

// configCmd prints the merged configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the merged zksim configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if showDefaults {
			_, err := cmd.OutOrStdout().Write(config.DefaultConfigYAML())
			return err
		}
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		out, err := formatter.FormatYAML(cfg, formatter.YAMLFormatOptions{LiteralBlockStrings: true})
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML config file (prompt, banner, tree style, colors)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "emit debug logs (JSON) on stderr")
	rootCmd.PersistentFlags().StringVar(&prompt, "prompt", "", "prompt shown before each command (default from config)")
	rootCmd.PersistentFlags().StringVar(&treeStyle, "tree-style", "", "tree drawing style: plain|box (default from config)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the banner and prompt")
	rootCmd.Flags().StringArrayVarP(&commands, "command", "c", nil, "run this command and exit; repeat to run several in order")
	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
	configCmd.Flags().BoolVar(&showDefaults, "defaults", false, "print the built-in default config instead of the merged one")
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
