package domain

import (
	"fmt"
	"sort"
)

// Policy selects how a boundary position of the progression is resolved.
type Policy string

const (
	// PolicyFixed pins the position to vertex 1 (the tonic slot).
	PolicyFixed Policy = "fixed"
	// PolicyNeighbor follows a random outgoing edge of the reference vertex.
	PolicyNeighbor Policy = "neighbor"
	// PolicyRandom picks any vertex that has outgoing edges.
	PolicyRandom Policy = "random"
)

// Valid reports whether p is one of the known policies.
func (p Policy) Valid() bool {
	switch p {
	case PolicyFixed, PolicyNeighbor, PolicyRandom:
		return true
	}
	return false
}

// Net is the transition network: an adjacency map from vertex id to the
// vertices allowed to follow it. Ids are positive and contiguous from 1.
// A vertex with an empty successor list is isolated; it can be reached but
// is never chosen as a random target.
type Net map[int][]int

// Keys returns all vertex ids in ascending order.
func (n Net) Keys() []int {
	keys := make([]int, 0, len(n))
	for k := range n {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// MaxKey returns the highest vertex id, or 0 for an empty net.
func (n Net) MaxKey() int {
	max := 0
	for k := range n {
		if k > max {
			max = k
		}
	}
	return max
}

// Clone returns a deep copy of the net.
func (n Net) Clone() Net {
	out := make(Net, len(n))
	for k, succ := range n {
		out[k] = append([]int(nil), succ...)
	}
	return out
}

// Config holds the generation settings for an Engine instance. It is
// treated as immutable for the lifetime of the engine: every Generate call
// works on copies of its mutable slices.
type Config struct {
	// Max is the progression length.
	Max int `yaml:"max" json:"max" mapstructure:"max"`

	// Net is the transition network the walker moves over.
	Net Net `yaml:"net" json:"net" mapstructure:"net"`

	// ChordQualities assigns a quality to each net key: index i holds the
	// quality of vertex i+1. Its length must equal the number of net keys.
	ChordQualities []string `yaml:"chord_qualities" json:"chord_qualities" mapstructure:"chord_qualities"`

	// ScaleRoot and ScaleName identify the reference scale.
	ScaleRoot string `yaml:"scale_root" json:"scale_root" mapstructure:"scale_root"`
	ScaleName string `yaml:"scale_name" json:"scale_name" mapstructure:"scale_name"`

	// Octave is the base octave assigned to each chord root.
	Octave int `yaml:"octave" json:"octave" mapstructure:"octave"`

	// TonicPolicy resolves position 1; ResolvePolicy resolves the last
	// position. The last position wins when the two overlap (Max == 1
	// is resolved by TonicPolicy alone).
	TonicPolicy   Policy `yaml:"tonic_policy" json:"tonic_policy" mapstructure:"tonic_policy"`
	ResolvePolicy Policy `yaml:"resolve_policy" json:"resolve_policy" mapstructure:"resolve_policy"`

	// Substitute enables the jazz-substitution pass.
	Substitute bool `yaml:"substitute" json:"substitute" mapstructure:"substitute"`

	// SubCondition is drawn independently for every substitution decision.
	// Nil selects the default: true with probability 1/4, drawn from the
	// engine's random source.
	SubCondition func() bool `yaml:"-" json:"-" mapstructure:"-"`

	// Flat enables sharp-to-flat re-spelling of the rendered pitch names.
	Flat bool `yaml:"flat" json:"flat" mapstructure:"flat"`
}

// DefaultConfig returns the stock settings: an eight-chord progression over
// a six-vertex diatonic net in C major at octave 4, both boundaries pinned
// to the tonic, no substitution, sharp spelling.
func DefaultConfig() Config {
	return Config{
		Max: 8,
		Net: Net{
			1: {2, 3, 4, 5, 6},
			2: {5},
			3: {4, 6},
			4: {1, 2, 5},
			5: {1, 6},
			6: {2, 4},
		},
		ChordQualities: []string{"", "m", "m", "", "", "m"},
		ScaleRoot:      "C",
		ScaleName:      "major",
		Octave:         4,
		TonicPolicy:    PolicyFixed,
		ResolvePolicy:  PolicyFixed,
	}
}

// Validate checks the configuration. It is called before any randomness is
// consumed and before any partial progression is produced.
//
// The chord-quality/net-key length check is the contract every caller may
// rely on. The net-shape checks (contiguous keys from 1, no dangling
// successors) and the policy checks are eager hardening: they reject nets
// the walker could not traverse safely instead of leaving the behavior
// undefined.
func (c Config) Validate() error {
	if len(c.ChordQualities) != len(c.Net) {
		return &ConfigurationError{
			Field:  "chord_qualities",
			Reason: fmt.Sprintf("%d qualities for %d net keys", len(c.ChordQualities), len(c.Net)),
		}
	}
	if c.Max < 1 {
		return &ConfigurationError{Field: "max", Reason: "must be positive"}
	}
	if len(c.Net) == 0 {
		return &ConfigurationError{Field: "net", Reason: "must not be empty"}
	}
	for i := 1; i <= len(c.Net); i++ {
		if _, ok := c.Net[i]; !ok {
			return &ConfigurationError{
				Field:  "net",
				Reason: fmt.Sprintf("keys must be contiguous from 1, missing %d", i),
			}
		}
	}
	for k, succ := range c.Net {
		for _, t := range succ {
			if _, ok := c.Net[t]; !ok {
				return &ConfigurationError{
					Field:  "net",
					Reason: fmt.Sprintf("vertex %d lists successor %d which is not a net key", k, t),
				}
			}
		}
	}
	if !c.TonicPolicy.Valid() {
		return &ConfigurationError{Field: "tonic_policy", Reason: fmt.Sprintf("unknown policy %q", c.TonicPolicy)}
	}
	if !c.ResolvePolicy.Valid() {
		return &ConfigurationError{Field: "resolve_policy", Reason: fmt.Sprintf("unknown policy %q", c.ResolvePolicy)}
	}
	return nil
}
