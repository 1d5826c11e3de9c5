package manager

import (
	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/ports"
)

// Schema returns the preference contribution of the version manager.
func Schema() ports.PreferenceSchema {
	return ports.PreferenceSchema{
		Title: "TypeScript",
		Properties: map[string]ports.PreferenceSpec{
			domain.TsdkPathPreference: {
				Type:        "string",
				Default:     "",
				Description: "Path to an SDK lib directory to use instead of the bundled one. Relative paths resolve against every workspace root.",
			},
		},
	}
}
