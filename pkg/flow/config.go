package flow

import (
	"path/filepath"

	"github.com/lumoslabs/envflow/pkg/log"
)

// NodeEnvVar is the store variable naming the current environment.
const NodeEnvVar = "NODE_ENV"

// dotenvFilename is the file a plain dotenv loader may have loaded before us.
const dotenvFilename = ".env"

// NodeEnv returns the effective environment name: o.NodeEnv, then NODE_ENV from the store, then
// o.DefaultNodeEnv. Empty means no environment.
func (l *Loader) NodeEnv(o Options) string {
	if o.NodeEnv != "" {
		return o.NodeEnv
	}
	if v, ok := l.Env.Load(NodeEnvVar); ok && v != "" {
		return v
	}
	return o.DefaultNodeEnv
}

// Config loads the .env* files selected by o into the store.
//
// With o.PurgeDotenv set, the variables of an existing .env file whose values are still unchanged in the
// store are removed first, so a .env loaded earlier by someone else does not outrank the cascade. Then
// either o.Files or the cascade for the effective environment name is loaded with Load. When the cascade
// is empty a *NoFilesFoundError is returned and nothing is loaded.
func (l *Loader) Config(o Options) Result {
	res := l.config(o)
	if res.Err != nil && !o.Silent {
		log.Warnf("Failed to load .env* files. msg=%s", res.Err.Error())
	}
	return res
}

func (l *Loader) config(o Options) Result {
	nodeEnv := l.NodeEnv(o)
	pattern := o.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	dir, er := filepath.Abs(o.Path)
	if er != nil {
		return Result{Err: er}
	}
	log.Debugf("Configuring. dir=%s pattern=%s node_env=%s", dir, pattern, nodeEnv)

	if o.PurgeDotenv {
		dotenvFile := resolve(dir, dotenvFilename)
		if l.exists(dotenvFile) {
			log.Debugf("Purging previously loaded variables. file=%s", dotenvFile)
			if er := l.Unload([]string{dotenvFile}, o.Encoding); er != nil {
				return Result{Err: er}
			}
		}
	}

	var files []string
	if len(o.Files) > 0 {
		for _, f := range o.Files {
			files = append(files, resolve(dir, f))
		}
	} else {
		if files, er = l.ListFiles(dir, pattern, nodeEnv); er != nil {
			return Result{Err: er}
		}
		if len(files) == 0 {
			p, _ := ParsePattern(pattern)
			return Result{Err: &NoFilesFoundError{Dir: dir, Pattern: p.Describe(nodeEnv)}}
		}
	}

	return l.Load(files, LoadOptions{Encoding: o.Encoding, Silent: o.Silent})
}
