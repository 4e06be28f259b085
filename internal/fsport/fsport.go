// Package fsport provides the filesystem capabilities the scaffolding engine depends on.
//
// Every implementation is backed by an afero.Fs so the engine runs unchanged
// against the real disk, an in-memory tree in tests, or a read-only template root.
package fsport

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileSystem is the capability interface consumed by the materializer.
// Failures are returned as *fs.PathError carrying the operation and offending path.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)

	// CopyTree recursively copies srcDir from the src filesystem to dst.
	// Fails with fs.ErrExist if dst already exists.
	CopyTree(src afero.Fs, srcDir, dst string) error

	// ReadText reads the full content of a file.
	ReadText(path string) (string, error)

	// WriteText replaces the content of a file.
	WriteText(path, content string) error

	// Rename moves a file, creating the destination's parent directory.
	Rename(oldPath, newPath string) error

	// DeleteFile removes a single file.
	DeleteFile(path string) error

	// List returns every regular file below dir as sorted slash-separated relative paths.
	List(dir string) ([]string, error)
}

// AferoFS implements FileSystem on top of an afero.Fs.
type AferoFS struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fsys afero.Fs) *AferoFS {
	return &AferoFS{fs: fsys}
}

// NewOS returns a FileSystem backed by the operating system.
func NewOS() *AferoFS {
	return New(afero.NewOsFs())
}

// NewMemory returns an empty in-memory FileSystem.
func NewMemory() *AferoFS {
	return New(afero.NewMemMapFs())
}

// Fs exposes the underlying afero filesystem.
func (a *AferoFS) Fs() afero.Fs {
	return a.fs
}

// Exists implements FileSystem.
func (a *AferoFS) Exists(p string) (bool, error) {
	ok, err := afero.Exists(a.fs, p)
	if err != nil {
		return false, pathError("stat", p, err)
	}
	return ok, nil
}

// IsDir implements FileSystem.
func (a *AferoFS) IsDir(p string) (bool, error) {
	info, err := a.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, pathError("stat", p, err)
	}
	return info.IsDir(), nil
}

// CopyTree implements FileSystem.
func (a *AferoFS) CopyTree(src afero.Fs, srcDir, dst string) error {
	exists, err := a.Exists(dst)
	if err != nil {
		return err
	}
	if exists {
		return pathError("copy", dst, fs.ErrExist)
	}

	return afero.Walk(src, srcDir, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return pathError("walk", p, walkErr)
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return pathError("copy", p, err)
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			if err := a.fs.MkdirAll(target, dirPerm); err != nil {
				return pathError("mkdir", target, err)
			}
			return nil
		}

		data, err := afero.ReadFile(src, p)
		if err != nil {
			return pathError("read", p, err)
		}
		if err := afero.WriteFile(a.fs, target, data, filePerm); err != nil {
			return pathError("write", target, err)
		}
		return nil
	})
}

// ReadText implements FileSystem.
func (a *AferoFS) ReadText(p string) (string, error) {
	data, err := afero.ReadFile(a.fs, p)
	if err != nil {
		return "", pathError("read", p, err)
	}
	return string(data), nil
}

// WriteText implements FileSystem.
func (a *AferoFS) WriteText(p, content string) error {
	if err := afero.WriteFile(a.fs, p, []byte(content), filePerm); err != nil {
		return pathError("write", p, err)
	}
	return nil
}

// Rename implements FileSystem.
func (a *AferoFS) Rename(oldPath, newPath string) error {
	if err := a.fs.MkdirAll(filepath.Dir(newPath), dirPerm); err != nil {
		return pathError("mkdir", filepath.Dir(newPath), err)
	}
	if err := a.fs.Rename(oldPath, newPath); err != nil {
		return pathError("rename", oldPath, err)
	}
	return nil
}

// DeleteFile implements FileSystem.
func (a *AferoFS) DeleteFile(p string) error {
	info, err := a.fs.Stat(p)
	if err != nil {
		return pathError("delete", p, err)
	}
	if info.IsDir() {
		return pathError("delete", p, errors.New("is a directory"))
	}
	if err := a.fs.Remove(p); err != nil {
		return pathError("delete", p, err)
	}
	return nil
}

// List implements FileSystem.
func (a *AferoFS) List(dir string) ([]string, error) {
	return ListFiles(a.fs, dir)
}

// ListFiles returns every regular file below dir in fsys as sorted
// slash-separated paths relative to dir.
func ListFiles(fsys afero.Fs, dir string) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, dir, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return pathError("walk", p, walkErr)
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return pathError("list", p, err)
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ReadOnlyDir returns a read-only filesystem rooted at dir on disk.
func ReadOnlyDir(dir string) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// ReadOnlyFS adapts an io/fs filesystem, such as an embed.FS, into a read-only afero.Fs.
func ReadOnlyFS(fsys fs.FS) afero.Fs {
	return afero.NewReadOnlyFs(afero.FromIOFS{FS: fsys})
}

// Join joins slash-separated template paths; io/fs backed roots reject OS separators.
func Join(elem ...string) string {
	return path.Join(elem...)
}

// pathError wraps err with op and path, reusing the innermost cause of an existing *fs.PathError.
func pathError(op, p string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		if pe.Path == p && pe.Op == op {
			return pe
		}
		err = pe.Err
	}
	return &fs.PathError{Op: op, Path: p, Err: err}
}
