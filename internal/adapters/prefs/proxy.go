package prefs

import (
	"encoding/json"

	"go.trai.ch/tsdk/internal/core/ports"
	"go.trai.ch/zerr"
)

// Decode reads the effective value of key and decodes it into out through a
// JSON round-trip. A key without a value leaves out untouched. This is the
// building block for typed read proxies over the live store.
func Decode(p ports.Preferences, key string, out any) error {
	v := p.Value(key)
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return zerr.Wrap(err, "failed to encode preference "+key)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return zerr.Wrap(err, "failed to decode preference "+key)
	}
	return nil
}
