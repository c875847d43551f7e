package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/surveyfront/internal/config"
	"github.com/kailas-cloud/surveyfront/internal/download"
	logpkg "github.com/kailas-cloud/surveyfront/internal/logger"
	"github.com/kailas-cloud/surveyfront/internal/transport/backend"
	exportuc "github.com/kailas-cloud/surveyfront/internal/usecase/export"
	lookupuc "github.com/kailas-cloud/surveyfront/internal/usecase/lookup"
	"github.com/kailas-cloud/surveyfront/internal/version"
	surveyfront "github.com/kailas-cloud/surveyfront/pkg/sdk"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	env        string
	configPath string
	backendURL string
	apiKey     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "surveyfront",
		Short: "Look up surveys and export their Word drafts",
		Long: `surveyfront talks to the survey backend: it looks up surveys by ID and
downloads the Word document draft of a survey.

Run "surveyfront serve" for the browser page, "surveyfront tui" for the
terminal UI, or use the lookup and export subcommands directly.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.env, "env", config.GetEnv(), "environment: selects config/<env>.yaml (local, dev, prod)")
	pf.StringVar(&f.configPath, "config", "", "explicit config file (overrides --env lookup)")
	pf.StringVar(&f.backendURL, "backend", "", "survey backend base URL (overrides config)")
	pf.StringVar(&f.apiKey, "api-key", "", "survey backend API key (overrides config)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newServeCmd(f),
		newLookupCmd(f),
		newExportCmd(f),
		newTUICmd(f),
		newCheckCmd(f),
		newVersionCmd(),
	)
	return cmd
}

// app is the wired object graph shared by the subcommands.
type app struct {
	cfg     config.Config
	env     string
	logger  *zap.Logger
	backend *backend.Client
	lookup  *lookupuc.Service
	export  *exportuc.Service
	dir     *download.Dir
}

// appOptions tune how the app is wired for a subcommand.
type appOptions struct {
	// interactive sends logs to stderr at warn level unless --log-level is set.
	interactive bool
	// quiet discards all logs (the TUI owns the terminal).
	quiet bool
	// registerer receives SDK metrics; nil disables them.
	registerer prometheus.Registerer
	// dir overrides download.dir.
	dir string
}

func (f *rootFlags) loadConfig(dir string) (config.Config, error) {
	override := func(c *config.Config) {
		if f.backendURL != "" {
			c.Backend.BaseURL = f.backendURL
		}
		if f.apiKey != "" {
			c.Backend.APIKey = f.apiKey
		}
		if dir != "" {
			c.Download.Dir = dir
		}
	}

	var (
		cfg config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath, override)
	} else {
		cfg, err = config.Load(f.env, override)
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (f *rootFlags) newApp(opts appOptions) (*app, error) {
	cfg, err := f.loadConfig(opts.dir)
	if err != nil {
		return nil, err
	}

	logger, sdkLogger, err := f.newLoggers(cfg, opts)
	if err != nil {
		return nil, err
	}

	sdkOpts := []surveyfront.Option{
		surveyfront.WithTimeout(time.Duration(cfg.Backend.TimeoutSec) * time.Second),
		surveyfront.WithUserAgent("surveyfront/" + version.Version),
		surveyfront.WithLogger(sdkLogger),
	}
	if cfg.Backend.APIKey != "" {
		sdkOpts = append(sdkOpts, surveyfront.WithAPIKey(cfg.Backend.APIKey))
	}
	if opts.registerer != nil {
		sdkOpts = append(sdkOpts, surveyfront.WithPrometheus(opts.registerer))
	}

	client, err := surveyfront.New(cfg.Backend.BaseURL, sdkOpts...)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("create backend client: %w", err)
	}

	be := backend.New(client)
	dir := download.NewDir(cfg.Download.Dir)

	return &app{
		cfg:     cfg,
		env:     f.env,
		logger:  logger,
		backend: be,
		lookup:  lookupuc.New(be, logger),
		export:  exportuc.New(be, logger),
		dir:     dir,
	}, nil
}

// newLoggers builds the zap logger and the slog logger handed to the SDK.
func (f *rootFlags) newLoggers(cfg config.Config, opts appOptions) (*zap.Logger, *slog.Logger, error) {
	if opts.quiet && f.logLevel == "" {
		return zap.NewNop(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	level := f.logLevel
	if level == "" && !opts.interactive {
		level = cfg.Logging.Level
	}
	logger, err := logpkg.NewLogger(f.env, opts.interactive, level)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	sdkLevel := slog.LevelInfo
	if opts.interactive {
		sdkLevel = slog.LevelWarn
	}
	return logger, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sdkLevel})), nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}
