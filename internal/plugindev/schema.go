// Package plugindev declares the preference contribution of the plugin
// development extension and a typed read proxy over the live store.
package plugindev

import (
	"go.trai.ch/tsdk/internal/adapters/prefs"
	"go.trai.ch/tsdk/internal/core/ports"
)

// Preference keys contributed by the plugin development extension.
const (
	BuildConfigurationsKey  = "pluginDev.buildConfigurations"
	ExperimentalCommandsKey = "pluginDev.experimentalCommands"
	TraceServerKey          = "pluginDev.trace.server"
)

// Trace verbosity values accepted by pluginDev.trace.server.
const (
	TraceOff      = "off"
	TraceMessages = "messages"
	TraceVerbose  = "verbose"
)

// BuildConfiguration is one named way of building the plugin under
// development.
type BuildConfiguration struct {
	Name string            `json:"name"`
	Args []string          `json:"args,omitempty"`
	Env  map[string]string `json:"env,omitempty"`
}

// Schema returns the static preference schema of the extension.
func Schema() ports.PreferenceSchema {
	return ports.PreferenceSchema{
		Title: "Plugin Development",
		Properties: map[string]ports.PreferenceSpec{
			BuildConfigurationsKey: {
				Type:        "array",
				Default:     []BuildConfiguration{},
				Description: "Named build configurations for the plugin under development.",
			},
			ExperimentalCommandsKey: {
				Type:        "boolean",
				Default:     false,
				Description: "Enable experimental plugin development commands.",
			},
			TraceServerKey: {
				Type:        "string",
				Default:     TraceOff,
				Enum:        []string{TraceOff, TraceMessages, TraceVerbose},
				Description: "Traces the communication with the plugin host.",
			},
		},
	}
}

// Register contributes the schema to the preference store. It is called once
// at composition time.
func Register(p ports.Preferences) error {
	return p.RegisterSchema(Schema())
}

// Config is a typed read proxy over the live preference values.
type Config struct {
	prefs ports.Preferences
}

// NewConfig creates a proxy over the given store. The schema must already be
// registered.
func NewConfig(p ports.Preferences) *Config {
	return &Config{prefs: p}
}

// BuildConfigurations returns the configured build configurations.
func (c *Config) BuildConfigurations() ([]BuildConfiguration, error) {
	var configs []BuildConfiguration
	if err := prefs.Decode(c.prefs, BuildConfigurationsKey, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// ExperimentalCommands reports whether experimental commands are enabled.
func (c *Config) ExperimentalCommands() bool {
	return c.prefs.Bool(ExperimentalCommandsKey)
}

// TraceServer returns the configured trace verbosity.
func (c *Config) TraceServer() string {
	return c.prefs.String(TraceServerKey)
}
