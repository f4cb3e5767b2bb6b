package env

import (
	"bufio"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// OpenRepo finds and opens the repository containing dir, searching upward
// the way git does.
func OpenRepo(dir string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}

// HeadKind tags the state of a repository's HEAD.
type HeadKind int

const (
	// HeadBranch: HEAD points to an existing branch.
	HeadBranch HeadKind = iota
	// HeadCommit: HEAD is detached at a commit.
	HeadCommit
	// HeadUnborn: HEAD points to a branch with no commits yet.
	HeadUnborn
)

// Head describes where a repository's HEAD points.
type Head struct {
	Kind HeadKind

	// Name of the branch, when Kind is HeadBranch.
	Name string
	// Upstream holds the ahead/behind counts relative to the branch's
	// upstream, when Kind is HeadBranch. Nil when the branch has no
	// upstream; UpstreamErr is set instead when the counts could not be
	// computed.
	Upstream    *AheadBehind
	UpstreamErr error

	// Commit hash, when Kind is HeadCommit.
	Commit plumbing.Hash

	// Target of the HEAD symbolic reference (usually "refs/heads/..."),
	// when Kind is HeadUnborn.
	Target string
}

// QueryHead gets the information about a repository's HEAD.
func QueryHead(repo *git.Repository) (*Head, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return nil, err
	}

	if ref.Type() != plumbing.SymbolicReference {
		return &Head{Kind: HeadCommit, Commit: ref.Hash()}, nil
	}

	target := ref.Target()
	resolved, err := repo.Reference(target, true)
	if err == plumbing.ErrReferenceNotFound {
		return &Head{Kind: HeadUnborn, Target: string(target)}, nil
	}
	if err != nil {
		return nil, err
	}

	head := &Head{Kind: HeadBranch, Name: target.Short()}
	head.Upstream, head.UpstreamErr = queryUpstream(repo, target, resolved.Hash())
	return head, nil
}

// AheadBehind counts how many commits a branch is ahead of and behind its
// upstream.
type AheadBehind struct {
	Ahead  int
	Behind int
}

// queryUpstream computes the ahead/behind counts of the branch at local
// relative to its configured upstream, or (nil, nil) when no upstream is
// configured or its tracking reference does not exist.
func queryUpstream(repo *git.Repository, branch plumbing.ReferenceName, local plumbing.Hash) (*AheadBehind, error) {
	cfg, err := repo.Config()
	if err != nil {
		return nil, err
	}
	branchCfg, ok := cfg.Branches[branch.Short()]
	if !ok || branchCfg.Remote == "" || branchCfg.Merge == "" {
		return nil, nil
	}

	trackingRef := plumbing.NewRemoteReferenceName(branchCfg.Remote, branchCfg.Merge.Short())
	upstream, err := repo.Reference(trackingRef, true)
	if err == plumbing.ErrReferenceNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	localCommit, err := repo.CommitObject(local)
	if err != nil {
		return nil, err
	}
	upstreamCommit, err := repo.CommitObject(upstream.Hash())
	if err != nil {
		return nil, err
	}
	bases, err := localCommit.MergeBase(upstreamCommit)
	if err != nil {
		return nil, err
	}
	ignore := make([]plumbing.Hash, 0, len(bases))
	for _, base := range bases {
		ignore = append(ignore, base.Hash)
	}

	ahead, err := countCommits(localCommit, ignore)
	if err != nil {
		return nil, err
	}
	behind, err := countCommits(upstreamCommit, ignore)
	if err != nil {
		return nil, err
	}
	return &AheadBehind{Ahead: ahead, Behind: behind}, nil
}

// countCommits counts the commits reachable from commit, stopping at the
// ignored hashes.
func countCommits(commit *object.Commit, ignore []plumbing.Hash) (int, error) {
	count := 0
	err := object.NewCommitPreorderIter(commit, nil, ignore).
		ForEach(func(*object.Commit) error {
			count++
			return nil
		})
	return count, err
}

// ChangeSummary summarizes the changes in either a working tree or a
// staging area.
type ChangeSummary struct {
	Added    int
	Modified int
	Deleted  int
}

// AnyChanges tells whether the summary holds any change.
func (c ChangeSummary) AnyChanges() bool {
	return c.Added != 0 || c.Modified != 0 || c.Deleted != 0
}

// StatusSummary summarizes a repository's status: staged and working-tree
// changes plus the count of files with merge conflicts.
type StatusSummary struct {
	Staging     ChangeSummary
	WorkingTree ChangeSummary
	Conflicted  int
}

// AnyChanges tells whether the summary holds any change, staged or not.
func (s StatusSummary) AnyChanges() bool {
	return s.Conflicted != 0 || s.Staging.AnyChanges() || s.WorkingTree.AnyChanges()
}

// QueryStatusSummary gets the summary of a repository's status. Untracked
// files count as working-tree additions.
func QueryStatusSummary(repo *git.Repository) (*StatusSummary, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, err
	}

	summary := &StatusSummary{}
	for _, file := range status {
		if file.Staging == git.UpdatedButUnmerged || file.Worktree == git.UpdatedButUnmerged {
			summary.Conflicted++
		}

		switch file.Staging {
		case git.Added:
			summary.Staging.Added++
		case git.Deleted:
			summary.Staging.Deleted++
		case git.Modified, git.Renamed, git.Copied:
			summary.Staging.Modified++
		}

		switch file.Worktree {
		case git.Untracked:
			summary.WorkingTree.Added++
		case git.Deleted:
			summary.WorkingTree.Deleted++
		case git.Modified, git.Renamed, git.Copied:
			summary.WorkingTree.Modified++
		}
	}
	return summary, nil
}

// QueryStashCount counts the stashes recorded in a repository.
//
// go-git does not model stashes, so this counts the entries of the stash
// reflog in the repository's storage. Repositories on non-filesystem
// storage report zero.
func QueryStashCount(repo *git.Repository) (int, error) {
	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return 0, nil
	}
	file, err := storage.Filesystem().Open("logs/refs/stash")
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	return count, scanner.Err()
}
