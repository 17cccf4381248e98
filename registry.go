package tink

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry maps key type URLs to the KeyManager that understands them.
// Keeping every manager in one catalog enables modular construction of
// compound primitives from simple ones and lets decryption route serialized
// keys to the right algorithm.
//
// A Registry is populated once during application startup and treated as
// read-only afterwards. Reads are safe from any number of goroutines;
// concurrent registrations are serialized, and a second registration under
// an already-taken type URL fails instead of replacing the first.
type Registry struct {
	mu       sync.RWMutex
	managers map[string]KeyManager
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{managers: make(map[string]KeyManager)}
}

// RegisterKeyManager adds km under its type URL. Registering a manager of
// the same concrete type twice is an idempotent no-op; attempting to replace
// an existing manager with one of a different type returns ErrConfiguration
// and leaves the first registration active.
func (r *Registry) RegisterKeyManager(km KeyManager) error {
	if km == nil {
		return fmt.Errorf("%w: key manager is nil", ErrConfiguration)
	}
	typeURL := km.TypeURL()
	if typeURL == "" {
		return fmt.Errorf("%w: key manager has empty type URL", ErrConfiguration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.managers[typeURL]; ok {
		if reflect.TypeOf(existing) != reflect.TypeOf(km) {
			return fmt.Errorf("%w: a different key manager for %s is already registered", ErrConfiguration, typeURL)
		}
		return nil
	}
	r.managers[typeURL] = km
	return nil
}

// KeyManager returns the manager registered under typeURL.
func (r *Registry) KeyManager(typeURL string) (KeyManager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	km, ok := r.managers[typeURL]
	if !ok {
		return nil, fmt.Errorf("%w: no key manager registered for %s", ErrConfiguration, typeURL)
	}
	return km, nil
}

// NewKeyData generates fresh key material for the given template by routing
// it to the manager registered under the template's type URL.
func (r *Registry) NewKeyData(template KeyTemplate) (*KeyData, error) {
	km, err := r.KeyManager(template.TypeURL)
	if err != nil {
		return nil, err
	}
	return km.NewKeyData(template.Value)
}

// Primitive validates keyData and constructs the primitive bound to it.
func (r *Registry) Primitive(keyData *KeyData) (any, error) {
	if keyData == nil {
		return nil, fmt.Errorf("%w: key data is nil", ErrInvalidArgument)
	}
	km, err := r.KeyManager(keyData.TypeURL)
	if err != nil {
		return nil, err
	}
	return km.Primitive(keyData.Value)
}
