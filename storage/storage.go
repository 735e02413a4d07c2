package storage

// Storage defines the filesystem operations the logger relies on
type Storage interface {
	// Exists reports whether path exists. A missing path is not an error.
	Exists(path string) (bool, error)

	// Ensure creates an empty file at path, creating parent directories.
	// If the file exists and overwrite is false, it is left untouched.
	Ensure(path string, overwrite bool) error

	// Write appends data to path, or replaces its content when appending is false.
	Write(path string, data []byte, appending bool) error

	// ReadAll returns the full content of path
	ReadAll(path string) ([]byte, error)

	// Remove deletes path
	Remove(path string) error
}
