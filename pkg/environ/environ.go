package environ

import (
	"os"
	"sort"
	"strings"
)

var _ Store = (*Environ)(nil)

// NewEnviron returns a new blank Environ instance
func NewEnviron() *Environ {
	return &Environ{m: make(map[string]string)}
}

// NewEnvironFromEnv returns a new Environ instance populated from os.Environ
func NewEnvironFromEnv() *Environ {
	return NewEnvironFromSlice(os.Environ())
}

// NewEnvironFromSlice returns a new Environ populated from KEY=VALUE pairs. Items without a separator are ignored.
func NewEnvironFromSlice(items []string) *Environ {
	e := make(map[string]string, len(items))
	for _, item := range items {
		bits := strings.SplitN(item, "=", 2)
		if len(bits) == 2 {
			e[bits[0]] = bits[1]
		}
	}
	return &Environ{m: e}
}

// Set takes a key / value pair and adds it to this Environ
func (e *Environ) Set(k, v string) {
	e.Lock()
	defer e.Unlock()
	e.m[k] = v
}

// Load takes a key and returns the value if it exists or false
func (e *Environ) Load(k string) (v string, ok bool) {
	e.RLock()
	defer e.RUnlock()
	v, ok = e.m[k]
	return
}

// Delete takes a key and removes it from this Environ, returning the value
func (e *Environ) Delete(key string) (v string) {
	e.Lock()
	defer e.Unlock()

	v = e.m[key]
	delete(e.m, key)
	return
}

// Len returns the length of this Environ
func (e *Environ) Len() (l int) {
	e.RLock()
	defer e.RUnlock()
	l = len(e.m)
	return
}

// Map returns a copy of the variables held by this Environ
func (e *Environ) Map() map[string]string {
	e.RLock()
	defer e.RUnlock()
	m := make(map[string]string, len(e.m))
	for k, v := range e.m {
		m[k] = v
	}
	return m
}

// Slice returns a sorted []string of key / value pairs from this Environ instance
// suitable for use in place of os.Environ()
func (e *Environ) Slice() []string {
	e.RLock()
	var s = make([]string, 0, len(e.m))
	for k, v := range e.m {
		s = append(s, k+"="+v)
	}
	e.RUnlock()
	sort.Strings(s)
	return s
}
