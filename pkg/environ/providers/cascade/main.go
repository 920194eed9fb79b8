package cascade

import (
	"github.com/spf13/afero"

	"github.com/lumoslabs/envflow/pkg/environ"
	"github.com/lumoslabs/envflow/pkg/flow"
)

var fs = afero.NewOsFs()

// Name is the name of this Provider
const Name = "cascade"

func init() {
	environ.RegisterProvider(Name, New)
}

// New returns a Cascade configured from the DEFAULT_NODE_ENV and DOTENV_FLOW_* environment variables
func New() (environ.Provider, error) {
	o, er := flow.OptionsFromEnv()
	if er != nil {
		return nil, er
	}
	return &Cascade{Options: o}, nil
}

// AddToEnviron loads the cascade into the environ.Environ. The environment name defaults to the
// NODE_ENV held by the environ.Environ.
func (c *Cascade) AddToEnviron(e *environ.Environ) error {
	l := &flow.Loader{Fs: fs, Env: e}
	return l.Config(c.Options).Err
}
