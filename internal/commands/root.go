// Package commands implements the feedform command line.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/fielddef"
	"github.com/reoring/feedform/i18n"
	"github.com/reoring/feedform/internal/logging"
	"github.com/reoring/feedform/refresh"
)

// Version is set at build time.
var Version = "dev"

// Exit codes reported through ExitError.
const (
	ExitInvalid       = 1
	ExitRefreshNeeded = 3
)

const (
	configName   = "feedform"
	envPrefix    = "FEEDFORM"
	defaultScope = "default"

	flagConfig      = "config"
	flagDefs        = "defs"
	flagScope       = "scope"
	flagRefreshable = "refreshable"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagLang        = "lang"
)

// ExitError asks main to exit with Code. Its message, if any, has already
// been reported.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}

// app holds the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	logger zerolog.Logger
}

// RootCmd creates the root command with every subcommand attached.
func RootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "feedform",
		Short: "Inspect product feed configuration forms",
		Long: `feedform builds the admin form descriptors of product feed sections from
declarative field definitions, compiles the dependencies between fields and
tells whether a configuration change requires the feed to be refreshed.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String(flagConfig, "", "config file (default ./feedform.yaml)")
	pf.String(flagDefs, "", "field definition document (YAML or JSON)")
	pf.String(flagScope, defaultScope, "scope of the compared values")
	pf.Bool(flagRefreshable, false, "add the refresh policy fields to the section")
	pf.String(flagLogLevel, "warn", "log level (trace, debug, info, warn, error)")
	pf.String(flagLogFormat, "console", "log format (console, json)")
	pf.String(flagLang, "en", "language of issue messages (en, fr)")
	for _, name := range []string{flagDefs, flagScope, flagRefreshable, flagLogLevel, flagLogFormat, flagLang} {
		_ = a.v.BindPFlag(strings.ReplaceAll(name, "-", "_"), pf.Lookup(name))
	}

	cmd.AddCommand(a.describeCmd(), a.switcherCmd(), a.diffCmd(), a.validateCmd())
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		a.v.SetConfigFile(path)
	} else {
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg := logging.DefaultConfig().Apply(a.v.GetString("log_level"), a.v.GetString("log_format"))
	a.logger = logging.New(cfg, cmd.ErrOrStderr())
	cmd.SetContext(logging.WithContext(cmd.Context(), a.logger))

	i18n.SetLanguage(a.v.GetString(flagLang))
	a.logger.Debug().Str("config", a.v.ConfigFileUsed()).Msg("configuration loaded")
	return nil
}

func (a *app) scope() feedform.Scope { return feedform.Scope(a.v.GetString(flagScope)) }

// loadSection builds the section declared by --defs. With --refreshable the
// refresh policy fields are added and the refresh configuration is returned
// as well.
func (a *app) loadSection() (*feedform.Section, *refresh.Config, string, error) {
	path := a.v.GetString(flagDefs)
	if path == "" {
		return nil, nil, "", fmt.Errorf("--%s is required", flagDefs)
	}
	doc, err := fielddef.Load(path)
	if err != nil {
		return nil, nil, "", err
	}
	if !a.v.GetBool(flagRefreshable) {
		section, err := fielddef.Build(doc)
		if err != nil {
			return nil, nil, "", fmt.Errorf("%s: %w", path, err)
		}
		return section, nil, doc.Label, nil
	}

	fields := make([]*feedform.Field, 0, len(doc.Fields))
	for i, def := range doc.Fields {
		f, err := fielddef.BuildField(def)
		if err != nil {
			return nil, nil, "", fmt.Errorf("%s: field %d: %w", path, i, err)
		}
		fields = append(fields, f)
	}
	rc, err := refresh.NewConfig(feedform.ParseValuePath(doc.Base), fields, refresh.WithLogger(a.logger))
	if err != nil {
		return nil, nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return rc.Section(), rc, doc.Label, nil
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

type issueOutput struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func issuesOutput(iss feedform.Issues) []issueOutput {
	out := make([]issueOutput, len(iss))
	for i, it := range iss {
		out[i] = issueOutput{Path: it.Path, Code: it.Code, Message: it.Message}
	}
	return out
}
