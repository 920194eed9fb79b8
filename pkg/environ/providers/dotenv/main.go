package dotenv

import (
	"os"

	env "github.com/caarlos0/env/v5"
	"github.com/spf13/afero"

	"github.com/lumoslabs/envflow/pkg/environ"
	"github.com/lumoslabs/envflow/pkg/flow"
)

var fs = afero.NewOsFs()

const (
	// Name is the name of this Provider
	Name = "dotenv"

	// FilesEnvVar is the environment variable which lists the files to load
	FilesEnvVar = "DOTENV_FILES"
)

func init() {
	environ.RegisterProvider(Name, New)
}

// New returns a new Parser as an environ.Provider or an error if configuring failed.
// If no files are listed, the .env file of the working directory is used.
func New() (environ.Provider, error) {
	defer func() { os.Unsetenv(FilesEnvVar) }()

	var de = &Parser{}
	if er := env.Parse(de); er != nil {
		return nil, er
	}
	return de, nil
}

// AddToEnviron reads all specified dotenv files, later files overwriting earlier ones, and adds them to the
// environ.Environ without overwriting. Nothing is added if any file cannot be read.
func (p *Parser) AddToEnviron(e *environ.Environ) error {
	e.Delete(FilesEnvVar)

	l := &flow.Loader{Fs: fs, Env: e}
	return l.Load(p.Files, flow.LoadOptions{Encoding: p.Encoding}).Err
}
