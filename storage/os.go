package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/philipp01105/filelog/core"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// OS is a Storage backed by the host filesystem
type OS struct{}

// NewOS returns a Storage for the host filesystem
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether path exists
func (OS) Exists(path string) (bool, error) {
	fullPath, err := resolve(path)
	if err != nil {
		return false, err
	}
	return exists(fullPath)
}

func exists(fullPath string) (bool, error) {
	_, err := os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: stat %s: %w", core.ErrIO, fullPath, err)
}

// Ensure creates an empty file, creating parent directories as needed
func (OS) Ensure(path string, overwrite bool) error {
	fullPath, err := resolve(path)
	if err != nil {
		return err
	}

	found, err := exists(fullPath)
	if err != nil {
		return err
	}
	if found && !overwrite {
		return nil
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(fullPath), dirMode); err != nil {
		return fmt.Errorf("%w: create directory for %s: %w", core.ErrIO, fullPath, err)
	}
	if err := os.WriteFile(fullPath, nil, fileMode); err != nil {
		return fmt.Errorf("%w: create %s: %w", core.ErrIO, fullPath, err)
	}
	return nil
}

// Write appends or overwrites the file with a single write call
func (OS) Write(path string, data []byte, appending bool) (err error) {
	fullPath, err := resolve(path)
	if err != nil {
		return err
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appending {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(fullPath, flags, fileMode)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", core.ErrIO, fullPath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: close %s: %w", core.ErrIO, fullPath, closeErr))
		}
	}()

	if len(data) == 0 {
		return nil
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %w", core.ErrIO, fullPath, err)
	}
	return nil
}

// ReadAll returns the content of the file
func (OS) ReadAll(path string) ([]byte, error) {
	fullPath, err := resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: cannot find %s to read", core.ErrNotFound, fullPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", core.ErrIO, fullPath, err)
	}
	return data, nil
}

// Remove deletes the file
func (OS) Remove(path string) error {
	fullPath, err := resolve(path)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: cannot find %s to remove", core.ErrNotFound, fullPath)
	}
	if err != nil {
		return fmt.Errorf("%w: remove %s: %w", core.ErrIO, fullPath, err)
	}
	return nil
}

func resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", core.ErrIO)
	}
	fullPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", core.ErrIO, path, err)
	}
	return fullPath, nil
}
