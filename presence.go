package typedjson

// Presence is the bit flag collected by WithMeta APIs.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Default value was applied.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the constructed value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// DefaultOnly reports whether the field at path was materialized purely by its
// default value (never seen in the input, not null).
func (pm PresenceMap) DefaultOnly(path string) bool {
	p := pm[path]
	return p&PresenceDefaultApplied != 0 && p&PresenceSeen == 0 && p&PresenceWasNull == 0
}
