package config

const (
	// DefaultDatabasePath is a named shared-cache in-memory SQLite database.
	// It lives as long as at least one pool connection stays open.
	DefaultDatabasePath = "file:bookshelf?mode=memory&cache=shared"
)
