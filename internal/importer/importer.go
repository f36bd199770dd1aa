// Package importer finds export files on disk and files them away once
// they have been imported.
package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/cleared-dev/paypalbean/internal/accounts"
)

// Identifier recognizes files it can import.
type Identifier interface {
	Identify(path string) bool
}

// FileInfo describes a CSV file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns the CSV files directly inside dir. A missing dir yields none.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// Expand resolves command-line paths: files are taken as given, directories
// are scanned with Scan.
func Expand(paths []string) ([]FileInfo, error) {
	var files []FileInfo
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, FileInfo{Name: info.Name(), Path: p, Size: info.Size()})
			continue
		}
		found, err := Scan(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// Identified returns the files id recognizes, in order.
func Identified(files []FileInfo, id Identifier) []FileInfo {
	var out []FileInfo
	for _, f := range files {
		if id.Identify(f.Path) {
			out = append(out, f)
		}
	}
	return out
}

// ArchivePath returns where Archive files src:
// destRoot/<account components>/<date>.<base name>.
func ArchivePath(src, destRoot, account string, date civil.Date) string {
	name := date.String() + "." + filepath.Base(src)
	return filepath.Join(destRoot, accounts.Path(account), name)
}

// Archive moves src under destRoot and returns its new path. An existing
// file at the destination is never overwritten.
func Archive(src, destRoot, account string, date civil.Date) (string, error) {
	if err := accounts.Validate(account); err != nil {
		return "", fmt.Errorf("archiving %s: %w", src, err)
	}
	dst := ArchivePath(src, destRoot, account, date)

	if _, err := os.Stat(dst); err == nil {
		return "", fmt.Errorf("archiving %s: %s already exists", src, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("archiving %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("creating archive dir: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("moving %s to archive: %w", src, err)
	}
	return dst, nil
}
