package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	mailfinch "github.com/mailfinch/client-go"
	"github.com/mailfinch/client-go/internal/cliconfig"
)

var exampleUsage = strings.TrimSpace(`
  mailfinch letters list
  mailfinch letters create --file letter.toml
  mailfinch letters purchase 42
  mailfinch envelope 42 --font DejaVuSans.ttf --out envelope.pdf
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app is the state shared by every subcommand once flags are resolved.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	envPath string

	out    io.Writer
	log    zerolog.Logger
	client *mailfinch.Client
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig(), out: out, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "mailfinch",
		Short:         "Create, inspect and purchase MailFinch letters",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.mailfinch/config.toml)")
	flags.StringVar(&a.envPath, "env-file", ".env", "dotenv file with MAILFINCH_* variables")
	flags.StringVar(&a.cfg.APIKey, "api-key", a.cfg.APIKey, "MailFinch API key")
	flags.StringVar(&a.cfg.BaseURL, "base-url", a.cfg.BaseURL, "API base URL")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "HTTP timeout")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&a.cfg.JSON, "json", a.cfg.JSON, "print JSON instead of text")

	root.AddCommand(lettersCmd(a), envelopeCmd(a))

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})
	return root
}

// setup resolves configuration (flags > env > file > defaults) and builds
// the client.
func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := cliconfig.LoadDotEnv(a.envPath); err != nil {
		return fmt.Errorf("load %s: %w", a.envPath, err)
	}

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := cliconfig.Logger(errOut, a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	a.log = log
	a.log.Debug().
		Str("base_url", a.cfg.BaseURL).
		Dur("timeout", a.cfg.Timeout).
		Str("config", cfgFile).
		Msg("configuration")

	opts := append(a.cfg.ClientOptions(), mailfinch.WithLogger(a.log))
	client, err := mailfinch.New(a.cfg.APIKey, opts...)
	if err != nil {
		return err
	}
	a.client = client
	return nil
}
