package artifact

import "path/filepath"

// SourceKind discriminates the supported artifact locations.
type SourceKind string

const (
	// SourceKindDir points at an on-disk directory of artifact documents.
	SourceKindDir SourceKind = "dir"
	// SourceKindFS points at a directory inside an fs.FS supplied via
	// LoaderOptions.
	SourceKindFS SourceKind = "fs"
)

// Source identifies where a bundle of artifact documents lives.
type Source interface {
	Location() string
	Kind() SourceKind
}

type dirSource struct {
	path string
}

func (s dirSource) Location() string {
	return s.path
}

func (s dirSource) Kind() SourceKind {
	return SourceKindDir
}

// SourceFromDir returns a Source pointing to an artifact directory on disk.
func SourceFromDir(path string) Source {
	return dirSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a directory inside the fs.FS
// configured on the loader. Pass "." for the FS root.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}
