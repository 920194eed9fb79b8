package flow

import (
	"sort"

	"github.com/spf13/afero"

	"github.com/lumoslabs/envflow/pkg/environ"
	"github.com/lumoslabs/envflow/pkg/log"
)

// LoadOptions configures Loader.Load
type LoadOptions struct {
	Encoding string
	Silent   bool
}

// NewLoader returns a Loader reading from the OS filesystem into the environment of the current process.
func NewLoader() *Loader {
	return &Loader{Fs: afero.NewOsFs(), Env: environ.NewProcessEnv()}
}

// Parse reads each file with the given encoding and decodes it as dotenv. The results are merged in order,
// later files overwriting the variables of earlier ones. The first read or parse error aborts the parse.
func (l *Loader) Parse(filenames []string, encoding string) (map[string]string, error) {
	parsed := make(map[string]string)
	for _, f := range filenames {
		m, er := l.parseFile(f, encoding)
		if er != nil {
			return nil, er
		}
		for k, v := range m {
			parsed[k] = v
		}
	}
	return parsed, nil
}

func (l *Loader) parseFile(filename, encoding string) (map[string]string, error) {
	data, er := afero.ReadFile(l.Fs, filename)
	if er != nil {
		return nil, &FileAccessError{Path: filename, Err: er}
	}
	if data, er = decode(data, encoding); er != nil {
		return nil, &FileAccessError{Path: filename, Err: er}
	}

	m, er := unmarshal(data)
	if er != nil {
		return nil, &ParseError{Path: filename, Err: er}
	}
	return m, nil
}

// Load parses the files and sets every parsed variable not yet defined in the store. Variables already
// defined are left as they are, giving the shell priority over the files. If parsing fails the store is
// not modified and the error is returned in the Result.
func (l *Loader) Load(filenames []string, o LoadOptions) Result {
	parsed, er := l.Parse(filenames, o.Encoding)
	if er != nil {
		return Result{Err: er}
	}

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var skipped []string
	for _, k := range keys {
		if _, ok := l.Env.Load(k); !ok {
			l.Env.Set(k, parsed[k])
			continue
		}
		skipped = append(skipped, k)
		if !o.Silent {
			log.Warnf("%q is already defined and will not be overwritten", k)
		}
	}
	return Result{Parsed: parsed, Skipped: skipped}
}

// Unload parses the files and removes from the store every variable whose current value is exactly the
// parsed one. Values changed since they were loaded are kept. Parse errors are returned as is.
func (l *Loader) Unload(filenames []string, encoding string) error {
	parsed, er := l.Parse(filenames, encoding)
	if er != nil {
		return er
	}

	for k, v := range parsed {
		if cur, ok := l.Env.Load(k); ok && cur == v {
			l.Env.Delete(k)
		}
	}
	return nil
}
