package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/hnimtadd/promptline/env"
)

// WriteHead writes a short representation of a repository HEAD: the branch
// or unborn target name, or the abbreviated commit hash, preceded by a
// symbol indicating the HEAD state. For a branch with a known upstream the
// ahead/behind counts follow, in the format of WriteAheadBehind.
func WriteHead(w io.Writer, head *env.Head) error {
	switch head.Kind {
	case env.HeadUnborn:
		name := strings.TrimPrefix(head.Target, "refs/heads/")
		_, err := fmt.Fprintf(w, "○%s", name)
		return err
	case env.HeadBranch:
		if _, err := fmt.Fprintf(w, "\ue0a0%s", head.Name); err != nil {
			return err
		}
		if head.Upstream == nil || head.UpstreamErr != nil {
			return nil
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		return WriteAheadBehind(w, *head.Upstream)
	case env.HeadCommit:
		id := head.Commit.String()
		if len(id) > 6 {
			id = id[:6]
		}
		_, err := fmt.Fprintf(w, "◉%s", id)
		return err
	default:
		return nil
	}
}

// WriteAheadBehind writes the ahead and behind counts preceded by ↑ and ↓
// respectively, omitting zeroes. When both are zero, ≡ is written instead:
// the branch and its upstream point to the same commit.
func WriteAheadBehind(w io.Writer, aheadBehind env.AheadBehind) error {
	if aheadBehind.Ahead == 0 && aheadBehind.Behind == 0 {
		_, err := io.WriteString(w, "≡")
		return err
	}
	preceded := false
	if aheadBehind.Ahead != 0 {
		if _, err := fmt.Fprintf(w, "↑%d", aheadBehind.Ahead); err != nil {
			return err
		}
		preceded = true
	}
	if aheadBehind.Behind != 0 {
		if preceded {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "↓%d", aheadBehind.Behind); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatusSummary writes the staging and working-tree change summaries,
// in that order, separated by a vertical bar, each in the format of
// WriteChangeSummary. A nonzero merge-conflict count follows, preceded by
// an exclamation mark.
func WriteStatusSummary(w io.Writer, status *env.StatusSummary) error {
	preceded := false
	if status.Staging.AnyChanges() {
		if err := WriteChangeSummary(w, status.Staging); err != nil {
			return err
		}
		preceded = true
	}
	if status.WorkingTree.AnyChanges() {
		if preceded {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "| "); err != nil {
			return err
		}
		if err := WriteChangeSummary(w, status.WorkingTree); err != nil {
			return err
		}
		preceded = true
	}
	if status.Conflicted != 0 {
		if preceded {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "!%d", status.Conflicted); err != nil {
			return err
		}
	}
	return nil
}

// WriteChangeSummary writes the added, modified and deleted counts, in that
// order, preceded by +, ~ and - respectively. Zero counts are omitted.
func WriteChangeSummary(w io.Writer, changes env.ChangeSummary) error {
	preceded := false
	if changes.Added != 0 {
		if _, err := fmt.Fprintf(w, "+%d", changes.Added); err != nil {
			return err
		}
		preceded = true
	}
	if changes.Modified != 0 {
		if preceded {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "~%d", changes.Modified); err != nil {
			return err
		}
		preceded = true
	}
	if changes.Deleted != 0 {
		if preceded {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "-%d", changes.Deleted); err != nil {
			return err
		}
	}
	return nil
}
