package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"sort"
	"strings"
	"time"

	m "jacov.dev/pkg/jacov/internal/model"
)

// headLogFormat prints hash, author, committer and the raw body on separate
// lines. The body comes last because it may span several lines.
const headLogFormat = "%H%n%an%n%ae%n%cn%n%ce%n%B"

const headLogFields = 5

// GitAdapter reads repository metadata for the job payload.
type GitAdapter interface {
	// Info returns HEAD, branch and remotes of the repository containing dir.
	Info(ctx context.Context, dir m.Path) (*m.GitInfo, error)
}

// LocalGitAdapter drives the git CLI.
type LocalGitAdapter struct {
	timeout time.Duration
}

// NewLocalGitAdapter constructs a LocalGitAdapter with a default 10s timeout per command.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{
		timeout: 10 * time.Second,
	}
}

// Info collects HEAD commit, current branch and remotes.
func (a *LocalGitAdapter) Info(ctx context.Context, dir m.Path) (*m.GitInfo, error) {
	output, err := a.git(ctx, dir, "log", "-1", "--format="+headLogFormat)
	if err != nil {
		return nil, fmt.Errorf("read head commit: %w", err)
	}

	head, err := parseHead(output)
	if err != nil {
		return nil, err
	}

	branch, err := a.git(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("read branch: %w", err)
	}

	branch = strings.TrimSpace(branch)
	if branch == "HEAD" {
		// detached
		branch = head.ID
	}

	output, err = a.git(ctx, dir, "remote", "-v")
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}

	return &m.GitInfo{
		Head:    head,
		Branch:  branch,
		Remotes: parseRemotes(output),
	}, nil
}

func (a *LocalGitAdapter) git(ctx context.Context, dir m.Path, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = string(dir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Debug("git command failed", "args", args, "dir", dir, "stderr", strings.TrimSpace(stderr.String()))
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

func parseHead(output string) (m.Head, error) {
	lines := strings.SplitN(output, "\n", headLogFields+1)
	if len(lines) < headLogFields {
		return m.Head{}, fmt.Errorf("invalid commit output: expected at least %d lines, got %d", headLogFields, len(lines))
	}

	message := ""
	if len(lines) > headLogFields {
		message = strings.TrimSpace(lines[headLogFields])
	}

	return m.Head{
		ID:             lines[0],
		AuthorName:     lines[1],
		AuthorEmail:    lines[2],
		CommitterName:  lines[3],
		CommitterEmail: lines[4],
		Message:        message,
	}, nil
}

// parseRemotes reads `git remote -v` output (name\turl (fetch|push)) and keeps
// the fetch URL of every remote, ordered by name.
func parseRemotes(output string) []m.Remote {
	urls := make(map[string]string)

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}

		name, url, kind := parts[0], parts[1], strings.Trim(parts[2], "()")

		if _, seen := urls[name]; !seen || kind == "fetch" {
			urls[name] = url
		}
	}

	remotes := make([]m.Remote, 0, len(urls))
	for name, url := range urls {
		remotes = append(remotes, m.Remote{Name: name, URL: url})
	}

	sort.Slice(remotes, func(i, j int) bool {
		return remotes[i].Name < remotes[j].Name
	})

	return remotes
}
