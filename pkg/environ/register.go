package environ

import (
	"fmt"
	"sort"

	"github.com/lumoslabs/envflow/pkg/log"
)

var providers map[string]ProviderFactory

// RegisterProvider adds the named Provider's factory function to the map of known Providers
func RegisterProvider(name string, fn ProviderFactory) {
	log.Debugf("Registering provider. name=%s", name)
	if providers == nil {
		providers = make(map[string]ProviderFactory)
	}
	providers[name] = fn
}

// GetProvider returns a new instance of the named Provider or an unregistered provider error
func GetProvider(name string) (Provider, error) {
	fn, ok := providers[name]
	if !ok {
		return nil, newUnregisteredProviderError(name)
	}

	return fn()
}

// Providers returns the sorted names of all registered Providers
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Populate runs each named Provider in order against this Environ. A Provider that cannot be created or
// fails is logged and skipped, so later Providers still run.
func (e *Environ) Populate(names []string) {
	for _, name := range names {
		p, er := GetProvider(name)
		if er != nil {
			log.Warnf("Failed to create provider. name=%s msg=%s", name, er.Error())
			continue
		}
		if er := p.AddToEnviron(e); er != nil {
			log.Warnf("Provider failed. name=%s msg=%s", name, er.Error())
		}
	}
}

func newUnregisteredProviderError(name string) *unregisteredProviderError {
	return &unregisteredProviderError{name}
}

func (e *unregisteredProviderError) Error() string {
	return fmt.Sprintf("unregistered provider %s", e.provider)
}
