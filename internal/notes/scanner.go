// Package notes finds note files on disk and splits them into title and body.
package notes

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// File represents a note file found during scanning.
type File struct {
	RelPath string // Relative path from the scan root (e.g., "biology/cells.md")
	Folder  string // Folder path (path components except filename, e.g., "biology")
	AbsPath string // Absolute file path
}

// extensions lists the file types treated as notes.
var extensions = map[string]bool{
	".md":  true,
	".txt": true,
}

// Scan walks root and returns every note file below it in lexical order.
// Hidden directories such as .git and .obsidian are skipped.
func Scan(ctx context.Context, root string) ([]File, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve notes root %s: %w", root, err)
	}

	var files []File
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		// Check for context cancellation
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != absRoot && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		relPath = filepath.ToSlash(relPath)

		folder := filepath.ToSlash(filepath.Dir(relPath))
		if folder == "." {
			// Root-level file
			folder = ""
		}

		files = append(files, File{
			RelPath: relPath,
			Folder:  folder,
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("failed to scan notes in %s: %w", root, err)
	}

	return files, nil
}
