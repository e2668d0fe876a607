// Package discover expands a list of CLI-supplied paths — files and
// directories mixed together — into a deterministic, deduplicated list
// of Markdown files, recursing into directories the way a file-tree
// walker does for any batch text tool.
package discover

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the file extensions considered Markdown.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// Files resolves paths (files or directories, relative to workDir if
// not absolute) into a sorted, deduplicated list of Markdown files.
// Directories are walked recursively; hidden files and directories
// (leading dot) are skipped. A path named explicitly is always
// included even if its extension doesn't match, matching the
// principle of least surprise for direct file arguments.
func Files(ctx context.Context, paths []string, workDir string) ([]string, error) {
	extensions := DefaultExtensions()
	seen := make(map[string]struct{})
	var files []string

	for _, p := range paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		if info.IsDir() {
			found, err := walk(ctx, abs, extensions)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				addOnce(&files, seen, f)
			}
			continue
		}

		addOnce(&files, seen, abs)
	}

	sort.Strings(files)
	return files, nil
}

func addOnce(files *[]string, seen map[string]struct{}, path string) {
	if _, ok := seen[path]; ok {
		return
	}
	seen[path] = struct{}{}
	*files = append(*files, path)
}

func walk(ctx context.Context, root string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if hasExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
