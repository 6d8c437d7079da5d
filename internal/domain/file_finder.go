package domain

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"jacov.dev/pkg/jacov/internal/adapter"
	m "jacov.dev/pkg/jacov/internal/model"
)

// sniffExtensions lists the source extensions whose package declaration
// decides the root mapping.
var sniffExtensions = map[string]bool{
	".kt": true,
}

var packageLine = regexp.MustCompile(`^\s*package\s+([\w.]+)\s*;?\s*$`)

type finderRoot struct {
	dir    m.Path
	mapper PathMapper
}

// FileFinder resolves package-relative report paths against an ordered list
// of source roots. The first root holding a regular file for a key wins.
type FileFinder struct {
	fs    adapter.SourceFSAdapter
	roots []finderRoot
}

// NewFileFinder prepares a finder over roots, detecting the root package of
// every root that has no explicit mapping.
func NewFileFinder(ctx context.Context, fs adapter.SourceFSAdapter, roots []m.SourceRoot) *FileFinder {
	finder := &FileFinder{fs: fs}

	for _, root := range roots {
		var mapper PathMapper

		if root.Explicit {
			mapper = MapperForPackage(root.Package)
		} else {
			mapper = MapperForPackage(sniffRootPackage(ctx, fs, root.Dir))
		}

		slog.Info("source root", "dir", root.Dir, "mapping", mapper.String())

		finder.roots = append(finder.roots, finderRoot{dir: root.Dir, mapper: mapper})
	}

	return finder
}

// Find returns the file for a report key such as com/x/Main.kt.
func (f *FileFinder) Find(ctx context.Context, key string) (m.Path, bool) {
	for _, root := range f.roots {
		candidate := f.fs.JoinPath(ctx, string(root.dir), filepath.FromSlash(root.mapper.Map(key)))

		info, err := f.fs.FileInfo(ctx, candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}

	slog.Info("source file not found", "key", key)

	return "", false
}

// RootMappers returns the mapper for each root, in root order.
func (f *FileFinder) RootMappers() []PathMapper {
	mappers := make([]PathMapper, 0, len(f.roots))
	for _, root := range f.roots {
		mappers = append(mappers, root.mapper)
	}

	return mappers
}

// sniffRootPackage reads the package declaration of the first recognized
// source file directly inside dir. It returns "" when there is none.
func sniffRootPackage(ctx context.Context, fs adapter.SourceFSAdapter, dir m.Path) string {
	var candidates []string

	err := fs.Walk(ctx, dir, false, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Mode().IsRegular() && sniffExtensions[filepath.Ext(path)] {
			candidates = append(candidates, path)
		}

		return nil
	})
	if err != nil {
		slog.Debug("cannot list source root", "dir", dir, "error", err)
		return ""
	}

	if len(candidates) == 0 {
		return ""
	}

	sort.Strings(candidates)

	content, err := fs.ReadFile(ctx, m.Path(candidates[0]))
	if err != nil {
		slog.Debug("cannot read source file", "path", candidates[0], "error", err)
		return ""
	}

	return packageDeclaration(content)
}

func packageDeclaration(content []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if match := packageLine.FindSubmatch(scanner.Bytes()); match != nil {
			return string(match[1])
		}
	}

	return ""
}

// Mappings describes every root and its mapping, in root order.
func (f *FileFinder) Mappings() []m.RootMapping {
	mappings := make([]m.RootMapping, 0, len(f.roots))
	for _, root := range f.roots {
		mappings = append(mappings, m.RootMapping{Dir: root.dir, Mapping: root.mapper.String()})
	}

	return mappings
}
