package domain

import (
	"errors"
	"strings"

	"jacov.dev/pkg/jacov/internal/adapter"
	m "jacov.dev/pkg/jacov/internal/model"
)

// ErrRepoTokenNotSet is returned when no repository token is available.
var ErrRepoTokenNotSet = errors.New("COVERALLS_REPO_TOKEN not set")

// OptionsParser reads the Coveralls job options from the environment.
type OptionsParser struct {
	env adapter.EnvLookup
}

// NewOptionsParser creates a parser reading from env.
func NewOptionsParser(env adapter.EnvLookup) *OptionsParser {
	return &OptionsParser{env: env}
}

// Parse returns the job options. COVERALLS_REPO_TOKEN takes precedence over
// GITHUB_TOKEN; a blank token is rejected.
func (p *OptionsParser) Parse() (m.Options, error) {
	token, ok := p.env("COVERALLS_REPO_TOKEN")
	if !ok {
		token, ok = p.env("GITHUB_TOKEN")
	}

	if !ok || strings.TrimSpace(token) == "" {
		return m.Options{}, ErrRepoTokenNotSet
	}

	options := m.Options{
		RepoToken: token,
		FlagName:  p.env.Get("COVERALLS_FLAG_NAME"),
	}

	if value, ok := p.env("COVERALLS_PARALLEL"); ok {
		parallel := strings.EqualFold(value, "true")
		options.Parallel = &parallel
	}

	return options, nil
}
