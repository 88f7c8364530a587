package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/emojitui/config"
	"github.com/qyinm/emojitui/logging"
	"github.com/qyinm/emojitui/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type rootOptions struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.AppConfig
	logFile io.Closer
}

// NewRootCmd builds the emojitui command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	root := &cobra.Command{
		Use:   "emojitui",
		Short: "Browse the EmojiHub catalog in your terminal.",
		Long: `emojitui fetches the EmojiHub catalog once and lets you filter it by
category and page through it ten emojis at a time.

Run without arguments to start the interactive browser.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.v, opts.cfgFile)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			opts.cfg = cfg

			logCfg := cfg.Log
			if cmd == cmd.Root() {
				// The TUI owns the terminal, so logs only go to a file
				logCfg.Console = false
				if logCfg.File == "" {
					logCfg.File = filepath.Join(os.TempDir(), "emojitui.log")
				}
			}
			opts.logFile = logging.Setup(logCfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != nil {
				_ = opts.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts.cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.emojitui/config.yaml)")
	flags.String("api-url", "", "emoji catalog endpoint")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	_ = opts.v.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = opts.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(newCategoriesCmd(opts))
	root.AddCommand(newPageCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInteractive(ctx context.Context, cfg *config.AppConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	source, err := cfg.NewSource()
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	log.Info().Str("url", source.URL()).Msg("Starting emoji browser")

	model := ui.NewModel(ctx, source, cfg.BrowserOptions())
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
