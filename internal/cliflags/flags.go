// Package cliflags holds the command line flags shared by the envflow commands.
package cliflags

import (
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/lumoslabs/envflow/pkg/flow"
)

// Flags are the flow.Options settable from the command line
type Flags struct {
	Debug          *bool
	NodeEnv        *string
	DefaultNodeEnv *string
	Path           *string
	Pattern        *string
	Encoding       *string
	PurgeDotenv    *Switch
	Silent         *Switch
}

// Switch is a negatable bool flag remembering whether it was given on the command line
type Switch struct {
	Given bool
	Value bool
}

// Set implements kingpin.Value
func (s *Switch) Set(v string) error {
	b, er := strconv.ParseBool(v)
	if er != nil {
		return er
	}
	s.Given, s.Value = true, b
	return nil
}

func (s *Switch) String() string { return strconv.FormatBool(s.Value) }

// IsBoolFlag lets the flag be given without a value, or negated with a --no- prefix
func (s *Switch) IsBoolFlag() bool { return true }

func switchFlag(fc *kingpin.FlagClause) *Switch {
	s := &Switch{}
	fc.SetValue(s)
	return s
}

// Register adds the flow flags to app
func Register(app *kingpin.Application) *Flags {
	return &Flags{
		Debug:          app.Flag("debug", "Debug output").Bool(),
		NodeEnv:        app.Flag("node-env", "Environment name, e.g. development, test or production. Defaults to NODE_ENV").String(),
		DefaultNodeEnv: app.Flag("default-node-env", "Environment name used when neither --node-env nor NODE_ENV is set").String(),
		Path:           app.Flag("dotenv-flow-path", "Directory holding the .env* files. Defaults to the working directory").String(),
		Pattern:        app.Flag("dotenv-flow-pattern", "Naming convention of the .env* files").PlaceHolder(flow.DefaultPattern).String(),
		Encoding:       app.Flag("dotenv-flow-encoding", "Encoding of the .env* files").PlaceHolder(flow.DefaultEncoding).String(),
		PurgeDotenv:    switchFlag(app.Flag("dotenv-flow-purge-dotenv", "Unload variables of a previously loaded .env file first")),
		Silent:         switchFlag(app.Flag("dotenv-flow-silent", "Suppress warnings")),
	}
}

// LogLevel returns the log level selected by the flags
func (f *Flags) LogLevel() string {
	switch {
	case *f.Debug:
		return "debug"
	case f.Silent.Value:
		return "error"
	}
	return "warn"
}

// Options returns the flow.Options read from the environment, overridden by any flag given on the command line
func (f *Flags) Options() (flow.Options, error) {
	o, er := flow.OptionsFromEnv()
	if er != nil {
		return o, er
	}

	for _, s := range []struct {
		flag *string
		opt  *string
	}{
		{f.NodeEnv, &o.NodeEnv},
		{f.DefaultNodeEnv, &o.DefaultNodeEnv},
		{f.Path, &o.Path},
		{f.Pattern, &o.Pattern},
		{f.Encoding, &o.Encoding},
	} {
		if *s.flag != "" {
			*s.opt = *s.flag
		}
	}
	if f.PurgeDotenv.Given {
		o.PurgeDotenv = f.PurgeDotenv.Value
	}
	if f.Silent.Given {
		o.Silent = f.Silent.Value
	}
	return o, nil
}
