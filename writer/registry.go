package writer

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a Writer from the given options.
type Factory func(opts Options) (Writer, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a writer factory. Writers call it from init. Registering a
// name twice panics.
//
// Example:
//
//	func init() {
//	    writer.Register("yaml", func(opts writer.Options) (writer.Writer, error) {
//	        return New(opts), nil
//	    })
//	}
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("writer %q already registered", name))
	}
	registry[name] = factory
}

// New creates the named writer. Unknown names return an error wrapping
// ErrUnknownFormat.
func New(name string, opts Options) (Writer, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	w, err := factory(opts)
	if err != nil {
		return nil, &Error{Format: name, Op: "create", Err: err}
	}
	return w, nil
}

// Available returns the registered format names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registry[name]
	return ok
}

// Unregister removes a format. It is mostly useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, name)
}
