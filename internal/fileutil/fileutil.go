package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another process holds the lock for a target file.
var ErrLocked = errors.New("target is locked by another process")

// Written describes a file produced by WriteAtomic.
type Written struct {
	Path   string
	Bytes  int64
	SHA256 string
}

// LockPath returns the sidecar lock file guarding path.
func LockPath(path string) string {
	return path + ".lock"
}

// Lock takes an exclusive, non-blocking lock on the sidecar of path. The
// returned function releases it.
func Lock(path string) (func() error, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory for lock: %w", err)
		}
	}
	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return lock.Unlock, nil
}

// WriteAtomic streams content produced by fill into a temp file next to path,
// syncs it, and renames it over path. On any error the temp file is removed
// and path is left untouched. The target is locked for the duration.
func WriteAtomic(path string, mode os.FileMode, fill func(w io.Writer) error) (result Written, err error) {
	unlock, err := Lock(path)
	if err != nil {
		return Written{}, err
	}
	defer func() {
		if uerr := unlock(); uerr != nil && err == nil {
			err = fmt.Errorf("release lock: %w", uerr)
		}
	}()
	return writeTemp(path, mode, fill)
}

func writeTemp(path string, mode os.FileMode, fill func(w io.Writer) error) (Written, error) {
	out, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return Written{}, fmt.Errorf("create temp file: %w", err)
	}
	tmp := out.Name()
	committed := false
	defer func() {
		if !committed {
			_ = out.Close()
			_ = os.Remove(tmp)
		}
	}()

	hasher := sha256.New()
	counter := &countingWriter{w: io.MultiWriter(out, hasher)}
	if err := fill(counter); err != nil {
		return Written{}, err
	}
	if err := out.Sync(); err != nil {
		return Written{}, fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err := out.Chmod(mode); err != nil {
		return Written{}, fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err := out.Close(); err != nil {
		return Written{}, fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		committed = true
		return Written{}, fmt.Errorf("rename into place: %w", err)
	}
	committed = true

	return Written{
		Path:   path,
		Bytes:  counter.n,
		SHA256: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// ReplaceFile moves a fully written file at src over dst while holding the
// lock for dst. src must live on the same filesystem as dst.
func ReplaceFile(src, dst string, mode os.FileMode) error {
	unlock, err := Lock(dst)
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	if err := os.Chmod(src, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", src, err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// FileSHA256 returns the hex SHA-256 of the file at path.
func FileSHA256(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, in); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
