// Command basics walks through core Go syntax and prints what each feature
// does.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/shlex"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type options struct {
	sections    string
	list        bool
	color       string
	interactive bool
	dump        string
	replay      string
	width       int
	logLevel    string
	configPath  string
	configUsed  string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{
		color:    string(colorAuto),
		logLevel: "warn",
	}
	cmd := &cobra.Command{
		Use:           "basics",
		Short:         "A guided tour of core Go syntax",
		Long:          "basics runs a sequence of small demonstrations, from variables to generics and error handling, and prints what each one does.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			used, err := bindConfig(cmd.Flags(), opts.configPath)
			opts.configUsed = used
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.sections, "sections", "s", "", "Sections to run, space separated; quote names that contain spaces")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List the available sections and exit")
	cmd.Flags().StringVar(&opts.color, "color", opts.color, "Color output (auto, always, never)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse the tour in a pager")
	cmd.Flags().StringVar(&opts.dump, "dump", "", "Write the transcript to this file (.yaml/.yml for YAML, JSON otherwise)")
	cmd.Flags().StringVar(&opts.replay, "replay", "", "Render a transcript written by --dump instead of running the tour")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Wrap lines at this width (0 disables wrapping)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (defaults to $BASICS_CONFIG, then config.* under the user config dir)")
	cmd.Example = `  # Run the whole tour
  basics

  # Only generics and optional values
  basics --sections "generics 'optional values'"

  # Browse interactively and keep a YAML copy
  basics -i --dump tour.yaml`
	return cmd
}

func run(ctx context.Context, out, errOut io.Writer, opts *options) error {
	log, err := newLogger(opts.logLevel, errOut)
	if err != nil {
		return err
	}
	if opts.configUsed != "" {
		log.Info("config file used", "path", opts.configUsed)
	}
	mode, err := parseColorMode(opts.color)
	if err != nil {
		return err
	}
	styled := mode.apply()

	if opts.list {
		_, err := fmt.Fprint(out, listDemos())
		return err
	}

	names, err := shlex.Split(opts.sections)
	if err != nil {
		return errors.Wrap(err, "parse --sections")
	}

	var t transcript
	if opts.replay != "" {
		t, err = loadTranscript(opts.replay)
		log.Info("replaying transcript", "path", opts.replay)
	} else {
		log.Info("running tour", "sections", names)
		t, err = tour{log: log}.run(ctx, names)
	}
	if err != nil {
		return err
	}

	if opts.dump != "" {
		if err := dumpTranscript(t, opts.dump); err != nil {
			return err
		}
		log.Info("transcript written", "path", opts.dump)
	}

	if opts.interactive {
		return errors.Wrap(runPager(t, styled), "run pager")
	}

	r := renderer{width: opts.width, styled: styled}
	_, err = fmt.Fprint(out, r.render(t))
	return err
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	if errors.Is(err, context.Canceled) {
		message = fmt.Sprintf("%s\nHint: the tour was interrupted.", err)
	}
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", message)
}

// bindConfig fills flags the user did not set from BASICS_* environment
// variables and the config file. It returns the config file it read, if any.
func bindConfig(fs *pflag.FlagSet, explicitPath string) (string, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("BASICS")
	v.AutomaticEnv()
	if explicitPath == "" {
		explicitPath = os.Getenv("BASICS_CONFIG")
	}
	configureConfigFile(v, explicitPath)

	if err := v.BindPFlags(fs); err != nil {
		return "", errors.Wrap(err, "bind flags")
	}
	if err := readConfigFile(v, explicitPath != ""); err != nil {
		return "", errors.Wrap(err, "read config")
	}

	var setErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || setErr != nil {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		val := configValue(v.Get(f.Name))
		if val == "" {
			return
		}
		if err := f.Value.Set(val); err != nil {
			setErr = errors.Wrapf(err, "invalid value %q for %s", val, f.Name)
		}
	})
	return v.ConfigFileUsed(), setErr
}

// configValue flattens a config or environment value into flag syntax. A
// list such as `sections: [types, "optional values"]` becomes a shell-quoted
// string so --sections can split it again.
func configValue(raw any) string {
	var items []string
	switch list := raw.(type) {
	case []any:
		for _, item := range list {
			items = append(items, fmt.Sprint(item))
		}
	case []string:
		items = append(items, list...)
	default:
		return fmt.Sprint(raw)
	}
	for i, item := range items {
		if strings.ContainsAny(item, " \t'\"") {
			items[i] = "'" + strings.ReplaceAll(item, "'", "") + "'"
		}
	}
	return strings.Join(items, " ")
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "basics"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "basics"))
	}
	return dirs
}
