package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	stateFileMode  = 0o600
	stateDirMode   = 0o700
	stateConfigDir = ".files-billing"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// stateFile is one TOML document on disk, written atomically and guarded
// by a lock shared by every repository opened on the same path.
type stateFile struct {
	path  string
	label string
	mu    *sync.RWMutex
}

func openStateFile(cfg *viper.Viper, pathKey, fileName, label string) (stateFile, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(pathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return stateFile{}, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, stateConfigDir, fileName)
	}

	path, err := normalizePath(path, label)
	if err != nil {
		return stateFile{}, err
	}

	return stateFile{path: path, label: label, mu: lockForPath(path)}, nil
}

// read decodes the document into v. A missing file leaves v untouched.
func (f stateFile) read(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s file: %w", f.label, err)
	}

	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s file: %w", f.label, err)
	}

	return nil
}

func (f stateFile) write(v any) error {
	if err := os.MkdirAll(filepath.Dir(f.path), stateDirMode); err != nil {
		return fmt.Errorf("create %s directory: %w", f.label, err)
	}

	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s file: %w", f.label, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(f.path), "."+f.label+"-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("create temp %s file: %w", f.label, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s file: %w", f.label, err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp %s file: %w", f.label, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s file: %w", f.label, err)
	}

	if err := os.Rename(tempName, f.path); err != nil {
		return fmt.Errorf("replace %s file: %w", f.label, err)
	}
	cleanup = false

	if err := os.Chmod(f.path, stateFileMode); err != nil {
		return fmt.Errorf("chmod %s file: %w", f.label, err)
	}

	return nil
}

func normalizePath(path, label string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s path: %w", label, err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", field, err)
	}
	return parsed, nil
}
