package ports

// Workspace defines the interface for enumerating workspace roots and
// observing changes to the root set.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Roots returns a snapshot of the current workspace root directories.
	Roots() []string

	// OnDidChangeRoots registers a callback invoked with the new root set
	// whenever it changes. The returned function unsubscribes the callback.
	OnDidChangeRoots(fn func(roots []string)) (cancel func())
}
