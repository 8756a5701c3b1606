package cache

// ScopedKeyer wraps a Keyer with a prefix so separate callers (a server
// tenant, a test) get separate namespaces in a shared backend.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "preview:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// StampKey generates a prefixed stamp key.
func (k *ScopedKeyer) StampKey(opts StampKeyOpts) string {
	return k.prefix + k.inner.StampKey(opts)
}

// ReplayKey generates a prefixed replay key.
func (k *ScopedKeyer) ReplayKey(scriptHash string) string {
	return k.prefix + k.inner.ReplayKey(scriptHash)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneKey, opts)
}
