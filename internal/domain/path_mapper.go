package domain

import (
	"fmt"
	"strings"
)

// PathMapper rewrites a package-relative report path into a path relative to
// a source root.
type PathMapper interface {
	Map(p string) string
	String() string
}

// IdentityMapper leaves report paths untouched. It fits roots whose directory
// layout mirrors the full package name, as Java trees do.
type IdentityMapper struct{}

// Map returns p unchanged.
func (IdentityMapper) Map(p string) string {
	return p
}

func (IdentityMapper) String() string {
	return "identity"
}

// StripPrefixMapper removes a root package directory from report paths. Kotlin
// sources commonly omit the directories of the package shared by the whole
// root, so com/x/y/Main.kt lives at <root>/Main.kt.
type StripPrefixMapper struct {
	Prefix string
}

// Map strips Prefix plus its separator when p lives under it.
func (s StripPrefixMapper) Map(p string) string {
	if s.Prefix == "" {
		return p
	}

	if rest, ok := strings.CutPrefix(p, s.Prefix+"/"); ok {
		return rest
	}

	return p
}

func (s StripPrefixMapper) String() string {
	return fmt.Sprintf("strip %s/", s.Prefix)
}

// MapperForPackage returns the mapper for a root whose files declare pkg.
func MapperForPackage(pkg string) PathMapper {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return IdentityMapper{}
	}

	return StripPrefixMapper{Prefix: strings.ReplaceAll(pkg, ".", "/")}
}
