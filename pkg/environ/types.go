package environ

import "sync"

// Store is a mutable key / value store of environment variables. Values already present in a Store
// are considered authoritative by the loaders in this module.
type Store interface {
	Load(key string) (string, bool)
	Set(key, value string)
	Delete(key string) string
}

// Environ is a concurrency safe-ish map[string]string for holding environment variables
type Environ struct {
	sync.RWMutex
	m map[string]string
}

// Provider is a source of variables able to inject them into the environment
type Provider interface {
	AddToEnviron(*Environ) error
}

// ProviderFactory is a func that returns a new Provider
type ProviderFactory func() (Provider, error)

// MarshalFunc writes a map of variables to a serialized form
type MarshalFunc func(map[string]string) ([]byte, error)

type unregisteredProviderError struct {
	provider string
}

type unknownFormatError struct {
	format string
}
