package domain

import "go.trai.ch/zerr"

var (
	// ErrContentNotFound is returned by a content reader when the path does not exist.
	ErrContentNotFound = zerr.New("content not found")

	// ErrContentIsDirectory is returned by a content reader when the path is a directory.
	ErrContentIsDirectory = zerr.New("content is a directory")

	// ErrContentReadFailed is returned when reading content fails for any other reason.
	ErrContentReadFailed = zerr.New("failed to read content")

	// ErrStateCreateFailed is returned when the state store directory cannot be created.
	ErrStateCreateFailed = zerr.New("failed to create state store directory")

	// ErrStateReadFailed is returned when the persisted state cannot be read.
	ErrStateReadFailed = zerr.New("failed to read persisted state")

	// ErrStateUnmarshalFailed is returned when the persisted state cannot be unmarshaled.
	ErrStateUnmarshalFailed = zerr.New("failed to unmarshal persisted state")

	// ErrStateMarshalFailed is returned when the persisted state cannot be marshaled.
	ErrStateMarshalFailed = zerr.New("failed to marshal persisted state")

	// ErrStateWriteFailed is returned when the persisted state cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write persisted state")

	// ErrWorkfileReadFailed is returned when the workspace file cannot be read.
	ErrWorkfileReadFailed = zerr.New("failed to read workspace file")

	// ErrWorkfileParseFailed is returned when the workspace file cannot be parsed.
	ErrWorkfileParseFailed = zerr.New("failed to parse workspace file")

	// ErrWorkfileNotFound is returned when no workspace file can be found.
	ErrWorkfileNotFound = zerr.New("could not find tsdk.work.yaml")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsWriteFailed is returned when the settings file cannot be written.
	ErrSettingsWriteFailed = zerr.New("failed to write settings file")

	// ErrSettingsInvalidJSON is returned when the settings file is not valid JSON.
	ErrSettingsInvalidJSON = zerr.New("settings file is not valid JSON")

	// ErrSchemaDuplicateKey is returned when a preference key is registered twice.
	ErrSchemaDuplicateKey = zerr.New("preference key already registered")

	// ErrSchemaUnknownKey is returned when a preference key has no registered schema.
	ErrSchemaUnknownKey = zerr.New("preference key not registered")

	// ErrSchemaTypeMismatch is returned when a preference value does not match its declared type.
	ErrSchemaTypeMismatch = zerr.New("preference value does not match declared type")

	// ErrNoSuchVersion is returned when a requested SDK location is not among the candidates.
	ErrNoSuchVersion = zerr.New("no SDK found at requested location")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
