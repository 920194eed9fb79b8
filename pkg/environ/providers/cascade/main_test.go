package cascade

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumoslabs/envflow/pkg/environ"
	"github.com/lumoslabs/envflow/pkg/flow"
	"github.com/lumoslabs/envflow/pkg/log"
)

func TestIsProvider(t *testing.T) {
	assert.Implements(t, (*environ.Provider)(nil), new(Cascade))
}

func TestNew(t *testing.T) {
	os.Setenv("DOTENV_FLOW_PATH", "/app")
	os.Setenv("DEFAULT_NODE_ENV", "development")
	defer os.Unsetenv("DOTENV_FLOW_PATH")
	defer os.Unsetenv("DEFAULT_NODE_ENV")

	p, er := New()
	require.NoError(t, er)
	assert.Equal(t, flow.Options{Path: "/app", DefaultNodeEnv: "development"}, p.(*Cascade).Options)
}

func TestAddToEnviron(t *testing.T) {
	log.SetLogger(log.NewNilLogger())
	fs = afero.NewMemMapFs()
	defer func() { fs = afero.NewOsFs() }()

	afero.WriteFile(fs, "/app/.env", []byte("A=1\nB=1\n"), 0644)
	afero.WriteFile(fs, "/app/.env.local", []byte("B=2\n"), 0644)
	afero.WriteFile(fs, "/app/.env.production", []byte("C=3\n"), 0644)

	tests := []struct {
		name      string
		errorFunc func(assert.TestingT, error, string, ...interface{}) bool
		opts      flow.Options
		environ   []string
		keyvals   map[string]string
	}{
		{
			"default-cascade",
			assert.NoErrorf,
			flow.Options{Path: "/app"},
			nil,
			map[string]string{"A": "1", "B": "2"},
		},
		{
			"node-env-from-environ",
			assert.NoErrorf,
			flow.Options{Path: "/app"},
			[]string{"NODE_ENV=production", "A=shell"},
			map[string]string{"NODE_ENV": "production", "A": "shell", "B": "2", "C": "3"},
		},
		{
			"no-files",
			assert.Errorf,
			flow.Options{Path: "/elsewhere"},
			[]string{"A=shell"},
			map[string]string{"A": "shell"},
		},
	}

	for _, tt := range tests {
		e := environ.NewEnvironFromSlice(tt.environ)
		c := &Cascade{Options: tt.opts}
		tt.errorFunc(t, c.AddToEnviron(e), tt.name)
		assert.Equalf(t, tt.keyvals, e.Map(), tt.name)
	}
}
