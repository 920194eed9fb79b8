package cliflags

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/lumoslabs/envflow/pkg/flow"
)

func TestOptions(t *testing.T) {
	os.Setenv("DOTENV_FLOW_PATH", "/from/env")
	os.Setenv("DOTENV_FLOW_ENCODING", "latin1")
	os.Setenv("DOTENV_FLOW_PURGE_DOTENV", "true")
	defer os.Unsetenv("DOTENV_FLOW_PATH")
	defer os.Unsetenv("DOTENV_FLOW_ENCODING")
	defer os.Unsetenv("DOTENV_FLOW_PURGE_DOTENV")

	tests := []struct {
		name  string
		args  []string
		want  flow.Options
		level string
	}{
		{
			"env-only",
			nil,
			flow.Options{Path: "/from/env", Encoding: "latin1", PurgeDotenv: true},
			"warn",
		},
		{
			"flags-override-env",
			[]string{"--node-env", "test", "--dotenv-flow-path=/from/flag", "--dotenv-flow-pattern", "[local.]env", "--dotenv-flow-silent"},
			flow.Options{NodeEnv: "test", Path: "/from/flag", Pattern: "[local.]env", Encoding: "latin1", PurgeDotenv: true, Silent: true},
			"error",
		},
		{
			"negated-flag-overrides-env",
			[]string{"--no-dotenv-flow-purge-dotenv"},
			flow.Options{Path: "/from/env", Encoding: "latin1"},
			"warn",
		},
		{
			"debug",
			[]string{"--debug", "--default-node-env", "staging"},
			flow.Options{DefaultNodeEnv: "staging", Path: "/from/env", Encoding: "latin1", PurgeDotenv: true},
			"debug",
		},
	}

	for _, tt := range tests {
		app := kingpin.New("test", "")
		f := Register(app)
		_, er := app.Parse(tt.args)
		require.NoErrorf(t, er, tt.name)

		o, er := f.Options()
		require.NoErrorf(t, er, tt.name)
		assert.Equalf(t, tt.want, o, tt.name)
		assert.Equalf(t, tt.level, f.LogLevel(), tt.name)
	}
}

func TestSwitch(t *testing.T) {
	os.Setenv("DOTENV_FLOW_SILENT", "true")
	defer os.Unsetenv("DOTENV_FLOW_SILENT")

	tests := []struct {
		name   string
		args   []string
		silent bool
	}{
		{"not-given", nil, true},
		{"given", []string{"--dotenv-flow-silent"}, true},
		{"negated", []string{"--no-dotenv-flow-silent"}, false},
	}

	for _, tt := range tests {
		app := kingpin.New("test", "")
		f := Register(app)
		_, er := app.Parse(tt.args)
		require.NoErrorf(t, er, tt.name)

		o, er := f.Options()
		require.NoErrorf(t, er, tt.name)
		assert.Equalf(t, tt.silent, o.Silent, tt.name)
	}
}
