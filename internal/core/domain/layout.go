package domain

import "path/filepath"

const (
	// TsdkDirName is the name of the internal metadata directory.
	TsdkDirName = ".tsdk"

	// StateFileName is the name of the persisted flag store file.
	StateFileName = "flags.json"

	// WorkFileName is the name of the workspace configuration file.
	WorkFileName = "tsdk.work.yaml"

	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.json"

	// ManifestFileName is the name of the SDK package manifest.
	ManifestFileName = "package.json"

	// EntryPointFileName is the name of the SDK server entry point inside a lib directory.
	EntryPointFileName = "tsserver.js"

	// DefaultTsdkRelativePath is the conventional install location of the SDK,
	// relative to a workspace root.
	DefaultTsdkRelativePath = "node_modules/typescript/lib"

	// TsdkPathPreference is the settings key holding the user-configured SDK path override.
	TsdkPathPreference = "typescript.tsdk"

	// UseWorkspaceTsdkStateKey is the state store key for the workspace-sourced selection flag.
	UseWorkspaceTsdkStateKey = "useWorkspaceTsdk"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultTsdkPath returns the default root directory for tsdk metadata.
func DefaultTsdkPath() string {
	return TsdkDirName
}

// DefaultStatePath returns the default path for the persisted flag store.
// It joins .tsdk and flags.json.
func DefaultStatePath() string {
	return filepath.Join(TsdkDirName, StateFileName)
}
