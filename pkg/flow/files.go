package flow

import (
	"path/filepath"

	"github.com/lumoslabs/envflow/pkg/log"
)

// testEnv is the environment name for which the ".local" layer is left out, so tests give the same
// results for everyone.
const testEnv = "test"

// ListFiles returns the existing files of the cascade for nodeEnv, ordered by ascending priority:
// defaults, base, local, node_env specific and node_env specific local. An empty path means the
// working directory and an empty pattern means DefaultPattern. Only a malformed pattern is an error.
func (l *Loader) ListFiles(path, pattern, nodeEnv string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	p, er := ParsePattern(pattern)
	if er != nil {
		return nil, er
	}
	dir, er := filepath.Abs(path)
	if er != nil {
		return nil, er
	}

	names := make([]string, 0, 5)
	if pattern == DefaultPattern {
		names = append(names, DefaultsFilename)
	}
	names = append(names, p.Compose(false, ""))
	if nodeEnv != testEnv && p.HasLocal() {
		names = append(names, p.Compose(true, ""))
	}
	if nodeEnv != "" && p.HasNodeEnv() {
		names = append(names, p.Compose(false, nodeEnv))
		if p.HasLocal() {
			names = append(names, p.Compose(true, nodeEnv))
		}
	}

	files := make([]string, 0, len(names))
	for _, name := range names {
		f := resolve(dir, name)
		if l.exists(f) {
			files = append(files, f)
		}
	}
	log.Debugf("Listed cascade. dir=%s pattern=%s node_env=%s files=%v", dir, pattern, nodeEnv, files)
	return files, nil
}

func (l *Loader) exists(path string) bool {
	info, er := l.Fs.Stat(path)
	return er == nil && !info.IsDir()
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(dir, name)
}
