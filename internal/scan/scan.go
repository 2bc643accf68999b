// Package scan captures a one-level snapshot of a directory before any
// mutation happens, so classification can run against immutable data.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a direct child file of the scanned directory. Stem is the name
// without its extension; Ext is the extension lowercased with the dot
// stripped, empty when the name has none.
type File struct {
	Name string
	Stem string
	Ext  string
}

// Folder is a direct child directory together with its own direct child
// files. Err is set when the folder's contents could not be listed; such
// folders must not be moved based on guessed contents.
type Folder struct {
	Name  string
	Files []File
	Err   error
}

// Snapshot is the immutable view of a directory at capture time.
type Snapshot struct {
	Root    string
	Files   []File
	Folders []Folder
}

// Capture enumerates the direct children of root, partitioned into files and
// folders. Folder contents are listed one level deep; a folder whose listing
// fails is still recorded, with Err set. Enumeration of root itself failing
// is the only fatal condition.
func Capture(root string) (*Snapshot, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", root, err)
	}

	snap := &Snapshot{Root: root}
	for _, entry := range entries {
		if entry.IsDir() {
			snap.Folders = append(snap.Folders, captureFolder(root, entry.Name()))
			continue
		}
		snap.Files = append(snap.Files, newFile(entry.Name()))
	}
	return snap, nil
}

func captureFolder(root, name string) Folder {
	folder := Folder{Name: name}
	children, err := os.ReadDir(filepath.Join(root, name))
	if err != nil {
		folder.Err = err
		return folder
	}
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		folder.Files = append(folder.Files, newFile(child.Name()))
	}
	return folder
}

func newFile(name string) File {
	ext := filepath.Ext(name)
	return File{
		Name: name,
		Stem: strings.TrimSuffix(name, ext),
		Ext:  strings.ToLower(strings.TrimPrefix(ext, ".")),
	}
}
