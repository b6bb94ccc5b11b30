package storage

// Provider is the persistence adapter: get/set of JSON-serializable blobs by
// namespaced key. It holds no authority over the data: the application state
// is the owner, and the store is a mirror written after every mutation.
type Provider interface {
	// Lifecycle
	Load() error
	Close() error

	// Get unmarshals the blob stored under key into the value pointed to by
	// into. It returns false with a nil error when the key is absent OR when
	// the stored blob is corrupt; callers fall back to the key's default.
	Get(key string, into any) (bool, error)

	// Put marshals value and overwrites the blob stored under key.
	Put(key string, value any) error

	// Delete removes a single key. Absent keys are a no-op.
	Delete(key string) error

	// Reset removes all persisted state unconditionally. Irreversible.
	Reset() error

	// ConfigPath returns the on-disk location backing this store.
	ConfigPath() string
}
