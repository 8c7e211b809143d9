// Package app implements the gocmd command tree.
package app

import (
	"context"
	"io"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kbukum/gocmd/config"
	"github.com/kbukum/gocmd/errors"
	"github.com/kbukum/gocmd/logger"
	"github.com/kbukum/gocmd/observability"
	"github.com/kbukum/gocmd/process"
)

const shutdownTimeout = 5 * time.Second

// cli holds flag values and the state built before a subcommand runs.
type cli struct {
	configPath string
	format     string
	logLevel   string
	quiet      bool
	strict     bool

	fs     afero.Fs
	out    io.Writer
	errOut io.Writer

	cfg      *Config
	render   *renderer
	runner   *process.Runner
	shutdown observability.ShutdownFunc
}

// Execute runs gocmd with args and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	c := &cli{fs: afero.NewOsFs(), out: out, errOut: errOut}
	return c.execute(ctx, args)
}

func (c *cli) execute(ctx context.Context, args []string) int {
	root := c.newRootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if c.shutdown != nil {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if serr := c.shutdown(sctx); serr != nil {
			logger.Get("observability").Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", serr))
		}
		cancel()
	}

	if err == nil {
		return 0
	}
	if _, ok := err.(*exitStatus); !ok {
		c.renderer().failure(err)
	}
	return exitCode(err)
}

// renderer returns the configured renderer, or a text one when flag parsing
// failed before it was built.
func (c *cli) renderer() *renderer {
	if c.render != nil {
		return c.render
	}
	return &renderer{format: FormatText, out: c.out, errOut: c.errOut}
}

func (c *cli) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gocmd",
		Short: "Run a command and collect its exit code, output and error lines",
		Long: `gocmd launches a program, drains its standard output and standard error
concurrently and reports the exit code with both streams split into lines.

  gocmd run /bin/echo hello      Run an executable directly
  gocmd sh 'ls | wc -l'          Run a script through /bin/sh -c

gocmd exits with the child's exit code. It exits 127 when the program could
not be started and 2 on invalid input.

Configuration is read from ./gocmd.yml, ./config.yml or
$XDG_CONFIG_HOME/gocmd/config.yml, and GOCMD_* environment variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Validation(err.Error()).WithCause(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (yaml, json or toml)")
	flags.StringVarP(&c.format, "format", "o", FormatText, "output format (text, json, yaml, toml)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVarP(&c.quiet, "quiet", "q", false, "disable execution logging")
	flags.BoolVar(&c.strict, "strict", false, "fail with NOT_FOUND when the executable does not exist")

	root.AddCommand(c.newRunCommand(), c.newShCommand(), c.newVersionCommand())
	return root
}

// setup loads configuration and builds the logger, telemetry and runner.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	r, err := newRenderer(c.format, c.out, c.errOut)
	if err != nil {
		return err
	}
	c.render = r

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	c.cfg = cfg

	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, c.errOut)
	logger.SetGlobalLogger(log)

	shutdown, err := observability.Setup(cmd.Context(), cfg.Observability)
	c.shutdown = shutdown
	if err != nil {
		log.Warn("telemetry disabled", logger.ErrorFields("setup", err))
	}

	runLog := log.WithComponent(cfg.Process.Name)
	if c.quiet {
		runLog = logger.Nop()
	}
	c.runner = process.NewRunner(cfg.Process, process.WithLogger(runLog), process.WithFs(c.fs))
	return nil
}

func (c *cli) loadConfig() (*Config, error) {
	opts := []config.LoaderOption{config.WithFs(c.fs)}
	if c.configPath != "" {
		ok, err := afero.Exists(c.fs, c.configPath)
		if err != nil || !ok {
			return nil, errors.InvalidInput("config", "file "+c.configPath+" does not exist")
		}
		opts = append(opts, config.WithConfigFile(c.configPath))
	}

	cfg := &Config{}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, errors.Validation(err.Error()).WithCause(err)
	}

	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	if c.strict {
		cfg.Process.StrictPathCheck = true
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.Validation(err.Error()).WithCause(err)
	}
	return cfg, nil
}
