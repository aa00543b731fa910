// Package fix applies suggested fixes from diagnostics to source
// files. Edits apply bottom-up within a file so earlier offsets stay
// valid; overlapping fixes are skipped, never merged.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"shaderlint/internal/diag"
	"shaderlint/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines which fixes are selected.
type ApplyMode uint8

const (
	// ApplyModeAll applies every non-conflicting fix.
	ApplyModeAll ApplyMode = iota
	// ApplyModeOnce applies only the first fix in document order.
	ApplyModeOnce
)

// ApplyOptions configures fix selection.
type ApplyOptions struct {
	Mode ApplyMode
	// DryRun computes the changes without writing files.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	Message   string
	Path      string
	EditCount int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Title  string
	Reason string
}

// FileChange summarizes modifications performed on one file.
type FileChange struct {
	Path      string
	EditCount int
	// NewContent is the rewritten file, also present on dry runs.
	NewContent []byte
}

// ApplyResult aggregates applied fixes, skips, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply selects fixes from the diagnostics and rewrites the files.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)
	if opts.Mode == ApplyModeOnce {
		candidates = candidates[:1]
	}

	buffers := make(map[source.FileID][]byte)
	occupied := make(map[source.FileID][]diag.FixEdit)
	editCount := make(map[source.FileID]int)

	for _, cand := range candidates {
		fileID, ok := singleFile(cand.fix.Edits)
		if !ok {
			result.Skipped = append(result.Skipped, SkippedFix{
				Title:  cand.fix.Title,
				Reason: "fix touches multiple files",
			})
			continue
		}
		if conflicts(occupied[fileID], cand.fix.Edits) {
			result.Skipped = append(result.Skipped, SkippedFix{
				Title:  cand.fix.Title,
				Reason: "overlaps a previously applied fix",
			})
			continue
		}

		file := fs.Get(fileID)
		buf := buffers[fileID]
		if buf == nil {
			buf = append([]byte(nil), file.Content...)
		}
		next, applyErr := applyEdits(buf, occupied[fileID], cand.fix.Edits)
		if applyErr != nil {
			result.Skipped = append(result.Skipped, SkippedFix{
				Title:  cand.fix.Title,
				Reason: applyErr.Error(),
			})
			continue
		}

		buffers[fileID] = next
		occupied[fileID] = append(occupied[fileID], cand.fix.Edits...)
		editCount[fileID] += len(cand.fix.Edits)
		result.Applied = append(result.Applied, AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			Message:   cand.diag.Message,
			Path:      file.Path,
			EditCount: len(cand.fix.Edits),
		})
	}

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	ids := make([]source.FileID, 0, len(buffers))
	for id := range buffers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		file := fs.Get(id)
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:       file.Path,
			EditCount:  editCount[id],
			NewContent: buffers[id],
		})
		if opts.DryRun || file.Flags&source.FileVirtual != 0 {
			continue
		}
		if err := os.WriteFile(file.Path, buffers[id], 0o644); err != nil {
			return result, fmt.Errorf("fix: write %s: %w", file.Path, err)
		}
	}
	return result, nil
}

func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	var cands []candidate
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands
}

// sortCandidates orders by file, span, then insertion order so the
// selection is deterministic across runs.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		di, dj := cands[i].diag, cands[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return cands[i].order < cands[j].order
	})
}

func singleFile(edits []diag.FixEdit) (source.FileID, bool) {
	if len(edits) == 0 {
		return 0, false
	}
	id := edits[0].Span.File
	for _, e := range edits[1:] {
		if e.Span.File != id {
			return 0, false
		}
	}
	return id, true
}

func conflicts(existing, incoming []diag.FixEdit) bool {
	for _, a := range existing {
		for _, b := range incoming {
			if a.Span.Start < b.Span.End && b.Span.Start < a.Span.End {
				return true
			}
		}
	}
	return false
}

// applyEdits rewrites buf with the incoming edits. Offsets are given
// in original-file coordinates; the cumulative delta of already
// applied edits shifts them into buffer coordinates. Edits within one
// fix apply bottom-up.
func applyEdits(buf []byte, existing, incoming []diag.FixEdit) ([]byte, error) {
	edits := append([]diag.FixEdit(nil), incoming...)
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Span.Start == edits[j].Span.Start {
			return edits[i].Span.End > edits[j].Span.End
		}
		return edits[i].Span.Start > edits[j].Span.Start
	})

	out := append([]byte(nil), buf...)
	for _, e := range edits {
		start := int(e.Span.Start) + cumulativeDelta(existing, int(e.Span.Start))
		end := int(e.Span.End) + cumulativeDelta(existing, int(e.Span.End))
		if start < 0 || end < start || end > len(out) {
			return nil, fmt.Errorf("edit span %d..%d out of range", e.Span.Start, e.Span.End)
		}
		rewritten := make([]byte, 0, len(out)-(end-start)+len(e.NewText))
		rewritten = append(rewritten, out[:start]...)
		rewritten = append(rewritten, e.NewText...)
		rewritten = append(rewritten, out[end:]...)
		out = rewritten
	}
	return out, nil
}

// cumulativeDelta sums the length changes of edits fully before off.
func cumulativeDelta(applied []diag.FixEdit, off int) int {
	delta := 0
	for _, e := range applied {
		if int(e.Span.End) <= off {
			delta += len(e.NewText) - int(e.Span.End-e.Span.Start)
		}
	}
	return delta
}
