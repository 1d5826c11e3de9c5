package ports

// PreferenceSpec declares the type, default and optional enumeration of a
// single preference key.
type PreferenceSpec struct {
	// Type is the JSON type of the value: "string", "boolean", "number",
	// "array" or "object".
	Type string
	// Default is applied when the settings file has no value for the key.
	Default any
	// Enum restricts a string preference to a fixed set of values.
	Enum []string
	// Description documents the preference for schema consumers.
	Description string
}

// PreferenceSchema is a declarative contribution of preference keys,
// registered once at composition time.
type PreferenceSchema struct {
	// Title names the contributing component.
	Title string
	// Properties maps preference keys to their specifications.
	Properties map[string]PreferenceSpec
}

// Preferences defines the interface for the live preference store.
//
//go:generate mockgen -source=preferences.go -destination=mocks/mock_preferences.go -package=mocks
type Preferences interface {
	// RegisterSchema contributes a schema. Keys already registered by an
	// earlier schema are rejected.
	RegisterSchema(schema PreferenceSchema) error

	// String returns the string value of key, or the registered default.
	// Values that do not match the declared type degrade to the default.
	String(key string) string

	// Bool returns the boolean value of key, or the registered default.
	Bool(key string) bool

	// Value returns the raw decoded value of key, or the registered default.
	Value(key string) any

	// OnDidChange registers a callback invoked whenever the effective value
	// of key changes. The returned function unsubscribes the callback.
	OnDidChange(key string, fn func()) (cancel func())
}
