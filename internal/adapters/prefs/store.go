// Package prefs implements the live preference store over a JSON settings
// file, with declarative schema registration and per-key change events.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/events"
	"go.trai.ch/tsdk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Preferences = (*Store)(nil)

// Store implements ports.Preferences. Settings keys are flat, dotted names
// at the top level of the document, VS Code style: {"typescript.tsdk": "..."}.
type Store struct {
	mu     sync.Mutex
	path   string
	raw    []byte
	specs  map[string]ports.PreferenceSpec
	subs   map[string]*events.Emitter[struct{}]
	logger ports.Logger
}

// NewStore loads the settings file at path. A missing file is an empty
// document; a malformed one is an error.
func NewStore(path string, logger ports.Logger) (*Store, error) {
	raw, err := readSettings(path)
	if err != nil {
		return nil, err
	}
	return &Store{
		path:   path,
		raw:    raw,
		specs:  make(map[string]ports.PreferenceSpec),
		subs:   make(map[string]*events.Emitter[struct{}]),
		logger: logger,
	}, nil
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// RegisterSchema contributes a schema. Keys already registered by an earlier
// schema are rejected.
func (s *Store) RegisterSchema(schema ports.PreferenceSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range schema.Properties {
		if _, ok := s.specs[key]; ok {
			return zerr.With(zerr.Wrap(domain.ErrSchemaDuplicateKey, ""), "key", key)
		}
	}
	for key, spec := range schema.Properties {
		s.specs[key] = spec
	}
	return nil
}

// Value returns the effective decoded value of key: the stored value when it
// exists and matches the declared type, the registered default otherwise.
func (s *Store) Value(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valueLocked(key)
}

// String returns the string value of key, or "" for a non-string value.
func (s *Store) String(key string) string {
	v, _ := s.Value(key).(string)
	return v
}

// Bool returns the boolean value of key, or false for a non-boolean value.
func (s *Store) Bool(key string) bool {
	v, _ := s.Value(key).(bool)
	return v
}

// Set validates value against the registered schema, writes it to the
// settings file and notifies subscribers of the key.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()

	spec, ok := s.specs[key]
	if !ok {
		s.mu.Unlock()
		return zerr.With(zerr.Wrap(domain.ErrSchemaUnknownKey, ""), "key", key)
	}
	if !valueMatches(spec, value) {
		s.mu.Unlock()
		return zerr.With(zerr.Wrap(domain.ErrSchemaTypeMismatch, ""), "key", key)
	}

	raw, err := sjson.SetBytes(s.raw, escapeKey(key), value)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %w", domain.ErrSettingsWriteFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %w", domain.ErrSettingsWriteFailed, err)
	}
	if err := os.WriteFile(s.path, raw, domain.FilePerm); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %w", domain.ErrSettingsWriteFailed, err)
	}

	s.raw = raw
	emitter := s.subs[key]
	s.mu.Unlock()

	if emitter != nil {
		emitter.Emit(struct{}{})
	}
	return nil
}

// OnDidChange registers a callback invoked whenever the effective value of
// key changes, through Set or Reload.
func (s *Store) OnDidChange(key string, fn func()) (cancel func()) {
	s.mu.Lock()
	emitter, ok := s.subs[key]
	if !ok {
		emitter = &events.Emitter[struct{}]{}
		s.subs[key] = emitter
	}
	s.mu.Unlock()

	return emitter.Subscribe(func(struct{}) { fn() })
}

// Reload re-reads the settings file and notifies subscribers of every
// registered key whose stored value changed. A file that became malformed is
// logged and ignored, keeping the previous document live.
func (s *Store) Reload() {
	raw, err := readSettings(s.path)
	if err != nil {
		s.logger.Error(err)
		return
	}

	s.mu.Lock()
	var emitters []*events.Emitter[struct{}]
	for key := range s.specs {
		before := gjson.GetBytes(s.raw, escapeKey(key)).Raw
		after := gjson.GetBytes(raw, escapeKey(key)).Raw
		if before != after {
			if emitter := s.subs[key]; emitter != nil {
				emitters = append(emitters, emitter)
			}
		}
	}
	s.raw = raw
	s.mu.Unlock()

	for _, emitter := range emitters {
		emitter.Emit(struct{}{})
	}
}

func (s *Store) valueLocked(key string) any {
	spec, ok := s.specs[key]
	if !ok {
		return nil
	}

	res := gjson.GetBytes(s.raw, escapeKey(key))
	if !res.Exists() {
		return spec.Default
	}
	if !typeMatches(spec, res) {
		s.logger.Warn(fmt.Sprintf("preference %q has type %s, expected %s; using default", key, res.Type, spec.Type))
		return spec.Default
	}
	if spec.Type == "string" && len(spec.Enum) > 0 {
		if !containsString(spec.Enum, res.String()) {
			s.logger.Warn(fmt.Sprintf("preference %q has value %q outside its enumeration; using default", key, res.String()))
			return spec.Default
		}
	}
	return res.Value()
}

// escapeKey protects the literal dots of flat settings keys from gjson's
// path syntax.
func escapeKey(key string) string {
	return strings.ReplaceAll(key, ".", `\.`)
}

func typeMatches(spec ports.PreferenceSpec, res gjson.Result) bool {
	switch spec.Type {
	case "string":
		return res.Type == gjson.String
	case "boolean":
		return res.Type == gjson.True || res.Type == gjson.False
	case "number":
		return res.Type == gjson.Number
	case "array":
		return res.IsArray()
	case "object":
		return res.IsObject()
	default:
		return true
	}
}

func valueMatches(spec ports.PreferenceSpec, value any) bool {
	switch spec.Type {
	case "string":
		s, ok := value.(string)
		if !ok {
			return false
		}
		return len(spec.Enum) == 0 || containsString(spec.Enum, s)
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "number":
		switch value.(type) {
		case int, int64, float64:
			return true
		}
		return false
	default:
		return true
	}
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func readSettings(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSettingsReadFailed, err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, zerr.With(zerr.Wrap(domain.ErrSettingsInvalidJSON, ""), "path", path)
	}
	return raw, nil
}
