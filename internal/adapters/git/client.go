// Package git implements the source-control adapter using the git CLI.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceControl = (*Client)(nil)

// logFormat keeps commit fields on one pipe-delimited line each.
const logFormat = "%h|%an|%ad|%s"

// Client runs git in the given working directory.
type Client struct {
	dir string
}

// NewClient creates a Client operating on the checkout at dir.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// CommitsSince returns the commits between ref and HEAD, newest first.
func (c *Client) CommitsSince(ctx context.Context, ref string) ([]domain.Commit, error) {
	out, err := c.run(ctx, "log", "--pretty=format:"+logFormat, "--date=short", ref+"..HEAD")
	if err != nil {
		return nil, refError(err, ref)
	}
	return parseCommits(out), nil
}

// ChangesSince returns the files changed between ref and the working tree.
func (c *Client) ChangesSince(ctx context.Context, ref string) ([]domain.ChangeRecord, error) {
	out, err := c.run(ctx, "diff", "--name-status", ref)
	if err != nil {
		return nil, refError(err, ref)
	}
	return parseChanges(out), nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "git invocation failed"), "stderr", strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// refError converts any git failure into the fatal sentinel: without a
// resolvable reference no change list is derivable.
func refError(err error, ref string) error {
	return zerr.With(zerr.With(domain.ErrRefNotResolved, "ref", ref), "cause", err.Error())
}

// parseCommits parses one commit per pipe-delimited line. Pipes inside the
// subject survive because only the first three separators split.
func parseCommits(out string) []domain.Commit {
	var commits []domain.Commit
	for line := range strings.Lines(out) {
		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 4 {
			continue
		}
		commits = append(commits, domain.Commit{
			ShortHash: parts[0],
			Author:    parts[1],
			Date:      parts[2],
			Subject:   parts[3],
		})
	}
	return commits
}

// parseChanges parses `git diff --name-status` output. Renames and copies
// report the post-change path and count as modifications.
func parseChanges(out string) []domain.ChangeRecord {
	var changes []domain.ChangeRecord
	for line := range strings.Lines(out) {
		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		changes = append(changes, domain.ChangeRecord{
			Path:   fields[len(fields)-1],
			Status: mapStatus(fields[0]),
		})
	}
	return changes
}

func mapStatus(code string) domain.ChangeStatus {
	if code == "" {
		return domain.StatusModified
	}
	switch code[0] {
	case 'A':
		return domain.StatusAdded
	case 'D':
		return domain.StatusDeleted
	default:
		return domain.StatusModified
	}
}
