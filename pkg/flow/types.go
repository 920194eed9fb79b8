package flow

import (
	"github.com/spf13/afero"

	"github.com/lumoslabs/envflow/pkg/environ"
)

// Loader resolves, parses and merges .env* files read from Fs into Env.
type Loader struct {
	Fs  afero.Fs
	Env environ.Store
}

// Options configures Loader.Config. The zero value loads the default cascade from the working directory.
type Options struct {
	// NodeEnv selects the environment specific layers. It takes precedence over NODE_ENV in the store.
	NodeEnv string
	// DefaultNodeEnv is used when neither NodeEnv nor NODE_ENV is set.
	DefaultNodeEnv string `env:"DEFAULT_NODE_ENV"`
	// Path is the directory holding the .env* files. Defaults to the working directory.
	Path string `env:"DOTENV_FLOW_PATH"`
	// Pattern is the naming convention of the .env* files. Defaults to DefaultPattern.
	Pattern string `env:"DOTENV_FLOW_PATTERN"`
	// Files, when not empty, is loaded as is instead of the cascade.
	Files []string `env:"DOTENV_FLOW_FILES" envSeparator:":"`
	// Encoding of the files. Defaults to utf8.
	Encoding string `env:"DOTENV_FLOW_ENCODING"`
	// PurgeDotenv unloads a previously loaded .env file before loading the cascade.
	PurgeDotenv bool `env:"DOTENV_FLOW_PURGE_DOTENV"`
	// Silent suppresses warnings.
	Silent bool `env:"DOTENV_FLOW_SILENT"`
}

// Result is the outcome of Load and Config. Exactly one of Parsed and Err is set.
type Result struct {
	// Parsed holds every parsed variable, including those not applied to the store.
	Parsed map[string]string
	// Skipped lists, sorted, the parsed variables left untouched because the store already had them.
	Skipped []string
	Err     error
}
