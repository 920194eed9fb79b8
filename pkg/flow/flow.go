// Package flow loads variables from a cascade of .env* files.
//
// For an environment name such as "development" and the default naming pattern
// ".env[.node_env][.local]", the cascade is, in ascending priority:
//
//	.env.defaults
//	.env
//	.env.local
//	.env.development
//	.env.development.local
//
// Missing files are skipped and ".env.local" is never listed for the "test" environment.
// Variables merged between files follow the last file that defines them, but a variable
// already present in the environment is never overwritten.
package flow

import (
	env "github.com/caarlos0/env/v5"
)

var std = NewLoader()

// OptionsFromEnv returns Options populated from the DEFAULT_NODE_ENV and DOTENV_FLOW_* environment variables
func OptionsFromEnv() (Options, error) {
	var o Options
	er := env.Parse(&o)
	return o, er
}

// ListFiles lists the existing files of the cascade using the OS filesystem
func ListFiles(path, pattern, nodeEnv string) ([]string, error) {
	return std.ListFiles(path, pattern, nodeEnv)
}

// Parse parses and merges the given files using the OS filesystem
func Parse(filenames []string, encoding string) (map[string]string, error) {
	return std.Parse(filenames, encoding)
}

// Load loads the given files into the process environment
func Load(filenames []string, o LoadOptions) Result {
	return std.Load(filenames, o)
}

// Unload removes the variables of the given files from the process environment
func Unload(filenames []string, encoding string) error {
	return std.Unload(filenames, encoding)
}

// Config loads the cascade selected by o into the process environment
func Config(o Options) Result {
	return std.Config(o)
}
