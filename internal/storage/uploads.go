// Package storage manages the flat local uploads directory. Files are stored
// under their original filename, so uploading the same name twice overwrites
// the earlier file (last writer wins).
package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

type Uploads struct {
	Dir string
}

func New(dir string) *Uploads {
	return &Uploads{Dir: dir}
}

// Save writes the uploaded file into the uploads directory and returns the
// stored relative path (e.g. "uploads/logo.png"). The directory is created on
// demand. Only the base name of the client-provided filename is used.
func (u *Uploads) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(u.Dir, filepath.Base(file.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filepath.ToSlash(path), nil
}

// Path returns the on-disk location for a stored filename.
func (u *Uploads) Path(filename string) string {
	return filepath.Join(u.Dir, filepath.Base(filename))
}

// Exists reports whether a stored filename is present in the directory.
func (u *Uploads) Exists(filename string) bool {
	info, err := os.Stat(u.Path(filename))
	return err == nil && !info.IsDir()
}
