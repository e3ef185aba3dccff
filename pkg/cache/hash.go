package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer generates cache keys for panel artifacts.
type Keyer interface {
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every setting that changes an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Columns   int     `json:"columns"`
	Rows      int     `json:"rows"`
	XOffsetMM float64 `json:"x_offset_mm"`
	YOffsetMM float64 `json:"y_offset_mm"`
	Scale     float64 `json:"scale,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<format>:<hash of input and options>".
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, inputHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
// Parts JSON cannot encode (NaN or Inf floats) are hashed from their Go
// syntax representation instead.
func hashKey(prefix string, parts ...interface{}) string {
	data, err := json.Marshal(parts)
	if err != nil {
		data = []byte(fmt.Sprintf("%#v", parts))
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
