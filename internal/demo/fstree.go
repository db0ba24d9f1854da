package demo

import (
	"io/fs"
	"path"
	"sort"
)

// Dir is a directory whose entries are read on first expansion.
type Dir struct {
	// Title replaces the path's last element in Name when set.
	Title string

	fsys   fs.FS
	path   string
	loaded bool
	items  []any
	err    error
}

// File is a leaf entry.
type File struct {
	Path string
	Size int64
}

// NewDir returns the directory at name within fsys.
func NewDir(fsys fs.FS, name string) *Dir {
	return &Dir{fsys: fsys, path: name}
}

// Name returns Title, or the last element of the directory's path.
func (d *Dir) Name() string {
	if d.Title != "" {
		return d.Title
	}
	return path.Base(d.path)
}

// Path returns the directory's path within its file system.
func (d *Dir) Path() string { return d.path }

// Err returns the error from reading the directory, if any.
func (d *Dir) Err() error { return d.err }

// Children lists directories first, then files, each sorted by name.
func (d *Dir) Children() []any {
	if d.loaded {
		return d.items
	}
	d.loaded = true

	entries, err := fs.ReadDir(d.fsys, d.path)
	if err != nil {
		d.err = err
		return nil
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	d.items = make([]any, 0, len(entries))
	for _, e := range entries {
		p := path.Join(d.path, e.Name())
		if e.IsDir() {
			d.items = append(d.items, NewDir(d.fsys, p))
			continue
		}
		f := &File{Path: p}
		if info, err := e.Info(); err == nil {
			f.Size = info.Size()
		}
		d.items = append(d.items, f)
	}
	return d.items
}

// Reload drops the cached entries so the next Children call reads again.
func (d *Dir) Reload() {
	d.loaded, d.items, d.err = false, nil, nil
}

// Name returns the last element of the file's path.
func (f *File) Name() string { return path.Base(f.Path) }
