package dotenv

// Parser is an github.com/lumoslabs/envflow/pkg/environ.Provider which accepts a list of dotenv files and, using
// github.com/lumoslabs/envflow/pkg/flow, parses them and adds the result to an environ.Environ object
type Parser struct {
	Files    []string `env:"DOTENV_FILES" envSeparator:":" envDefault:".env"`
	Encoding string   `env:"DOTENV_ENCODING"`
}
