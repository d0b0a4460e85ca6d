// Command shelf is a small product catalogue for handheld Linux devices.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/yiponline/shelf/internal/app"
	"github.com/yiponline/shelf/internal/config"
	"github.com/yiponline/shelf/internal/i18n"
	"github.com/yiponline/shelf/internal/logging"
	"github.com/yiponline/shelf/internal/store"
	"github.com/yiponline/shelf/internal/ui"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "shelf",
		Short:         "Keep track of up to five products",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(newRoutesCommand())
	cmd.AddCommand(newConfigCommand(opts))

	return cmd
}

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), app.Routes().Describe())
			return err
		},
	}
}

func newConfigCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logging.SetFileOptions(logging.FileOptions{
		Path:       cfg.Log.Path,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	logging.SetRawLevel(cfg.Log.Level)
	// Toolkit logging stays quiet outside dev mode.
	if cfg.DevMode {
		logging.SetInternalLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLevel(slog.LevelError)
	}
	return cfg, nil
}

func run(ctx context.Context, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	defer logging.Close()

	logger := logging.Logger()
	logger.Info("Starting", "locale", cfg.Locale, "dev", cfg.DevMode)

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		return err
	}

	products, err := store.New(
		store.WithLogger(logger),
		store.WithCapacityMessage(tr.T(i18n.CapacityError)),
	)
	if err != nil {
		return err
	}

	uiOpts, err := ui.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := ui.Init(uiOpts); err != nil {
		return err
	}
	defer ui.Close()

	view := ui.NewView(tr, ui.PhotoOptions{Dir: cfg.Photos.Dir, Extensions: cfg.Photos.Extensions})
	a, err := app.New(app.Options{
		Store:       products,
		View:        view,
		Photos:      view,
		Translator:  tr,
		Logger:      logger,
		SplashTitle: cfg.Splash.Title,
		SplashDelay: cfg.Splash.Delay.Duration,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Exited with error", "error", err)
		return err
	}

	logger.Info("Exited")
	return nil
}
