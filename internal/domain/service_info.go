package domain

import (
	"regexp"
	"strings"

	"jacov.dev/pkg/jacov/internal/adapter"
	m "jacov.dev/pkg/jacov/internal/model"
)

var githubPullRef = regexp.MustCompile(`refs/pull/(\d+)/merge`)

// ServiceInfoParser detects the CI service from environment variables.
type ServiceInfoParser struct {
	env adapter.EnvLookup
}

// NewServiceInfoParser creates a parser reading from env.
func NewServiceInfoParser(env adapter.EnvLookup) *ServiceInfoParser {
	return &ServiceInfoParser{env: env}
}

// Parse returns the first matching service, falling back to the generic CI_*
// variables.
func (p *ServiceInfoParser) Parse() m.ServiceInfo {
	get := p.env.Get

	switch {
	case p.isSet("JENKINS_URL"):
		return m.ServiceInfo{
			Name:   "jenkins",
			JobID:  get("BUILD_NUMBER"),
			PR:     get("ghprbPullId"),
			Branch: get("GIT_BRANCH"),
		}
	case get("TRAVIS") == "true":
		return m.ServiceInfo{
			Name:   p.getOr("CI_NAME", "travis-pro"),
			Number: get("TRAVIS_BUILD_NUMBER"),
			JobID:  get("TRAVIS_JOB_ID"),
			PR:     get("TRAVIS_PULL_REQUEST"),
			Branch: get("TRAVIS_BRANCH"),
		}
	case get("CIRCLECI") == "true":
		return m.ServiceInfo{
			Name:      "circleci",
			Number:    get("CIRCLE_WORKFLOW_ID"),
			JobNumber: get("CIRCLE_BUILD_NUM"),
			PR:        lastSegment(get("CIRCLE_PULL_REQUEST")),
			Branch:    get("CIRCLE_BRANCH"),
		}
	case get("CI_NAME") == "codeship":
		return m.ServiceInfo{
			Name:   "codeship",
			JobID:  get("CI_BUILD_NUMBER"),
			PR:     get("CI_PR_NUMBER"),
			Branch: get("CI_BRANCH"),
		}
	case p.isSet("GITHUB_ACTIONS") && p.isSet("GITHUB_TOKEN"):
		return m.ServiceInfo{
			Name:     "github",
			RepoName: get("GITHUB_REPOSITORY"),
			JobID:    get("BUILD_NUMBER"),
			PR:       githubPR(get("GITHUB_REF")),
			Branch:   get("CI_BRANCH"),
		}
	case p.isSet("GITHUB_ACTIONS"):
		return m.ServiceInfo{
			Name:   "github-actions",
			JobID:  get("BUILD_NUMBER"),
			PR:     githubPR(get("GITHUB_REF")),
			Branch: get("CI_BRANCH"),
		}
	case get("BUILDKITE") == "true":
		pr := get("BUILDKITE_PULL_REQUEST")
		if pr == "false" {
			pr = ""
		}

		return m.ServiceInfo{
			Name:     "buildkite",
			Number:   get("BUILDKITE_BUILD_NUMBER"),
			JobID:    get("BUILDKITE_BUILD_ID"),
			PR:       pr,
			Branch:   get("BUILDKITE_BRANCH"),
			BuildURL: get("BUILDKITE_BUILD_URL"),
		}
	case p.isSet("GITLAB_CI"):
		return m.ServiceInfo{
			Name:     "gitlab-ci",
			Number:   get("CI_PIPELINE_ID"),
			JobID:    get("CI_JOB_ID"),
			PR:       get("CI_MERGE_REQUEST_IID"),
			Branch:   get("CI_COMMIT_BRANCH"),
			BuildURL: get("CI_PIPELINE_URL"),
		}
	case get("BITRISE_IO") == "true":
		return m.ServiceInfo{
			Name:     "bitrise",
			Number:   get("BITRISE_BUILD_NUMBER"),
			PR:       get("BITRISE_PULL_REQUEST"),
			Branch:   get("BITRISE_GIT_BRANCH"),
			BuildURL: get("BITRISE_BUILD_URL"),
		}
	default:
		return m.ServiceInfo{
			Name:     p.getOr("CI_NAME", "other"),
			Number:   get("CI_BUILD_NUMBER"),
			PR:       get("CI_PULL_REQUEST"),
			Branch:   get("CI_BRANCH"),
			BuildURL: get("CI_BUILD_URL"),
		}
	}
}

func (p *ServiceInfoParser) isSet(key string) bool {
	_, ok := p.env(key)
	return ok
}

func (p *ServiceInfoParser) getOr(key, fallback string) string {
	if value, ok := p.env(key); ok {
		return value
	}

	return fallback
}

func lastSegment(value string) string {
	if i := strings.LastIndex(value, "/"); i >= 0 {
		return value[i+1:]
	}

	return value
}

func githubPR(ref string) string {
	if match := githubPullRef.FindStringSubmatch(ref); match != nil {
		return match[1]
	}

	return ""
}
