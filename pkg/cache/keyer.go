package cache

// StampKeyOpts identifies one stamped figure.
type StampKeyOpts struct {
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Angles [4]float64 `json:"angles"`
	Color  string     `json:"color"`
}

// ArtifactKeyOpts identifies one rendering of a scene.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Scale      float64 `json:"scale"`
	Background string  `json:"background"`
}

// Keyer builds cache keys.
type Keyer interface {
	// StampKey names the scene produced by a single stamp.
	StampKey(opts StampKeyOpts) string

	// ReplayKey names the scene produced by a replay script, given the
	// hash of its canonical encoding.
	ReplayKey(scriptHash string) string

	// ArtifactKey names one rendered format of a scene.
	ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// StampKey implements Keyer.
func (DefaultKeyer) StampKey(opts StampKeyOpts) string {
	return hashKey("stamp", opts)
}

// ReplayKey implements Keyer.
func (DefaultKeyer) ReplayKey(scriptHash string) string {
	return "replay:" + scriptHash
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneKey, opts)
}
