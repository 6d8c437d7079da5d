package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageKey_Path(t *testing.T) {
	assert.Equal(t, "foo/bar/Main.kt", CoverageKey{Package: "foo/bar", File: "Main.kt"}.Path())
	assert.Equal(t, "Main.kt", CoverageKey{File: "Main.kt"}.Path())
}

func TestCoverage_SortedKeys(t *testing.T) {
	coverage := Coverage{
		{Package: "b", File: "A.kt"}:   NewFileCoverage(),
		{Package: "a", File: "Z.kt"}:   NewFileCoverage(),
		{Package: "", File: "Root.kt"}: NewFileCoverage(),
		{Package: "a", File: "B.kt"}:   NewFileCoverage(),
	}

	assert.Equal(t, []CoverageKey{
		{Package: "", File: "Root.kt"},
		{Package: "a", File: "B.kt"},
		{Package: "a", File: "Z.kt"},
		{Package: "b", File: "A.kt"},
	}, coverage.SortedKeys())

	assert.Empty(t, Coverage{}.SortedKeys())
}
