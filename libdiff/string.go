package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString renders the edit from 'from' to 'to' inline, with deletions as
// [-text-] and insertions as {+text+}. Equal inputs give "".
//
// When most of the text changed the inline form is not useful, and the
// result is the plain replacement [-from-]{+to+}.
func DiffString(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			diffSize += len(diffs[i].Text)
		}
	}
	if diffSize > max(len(from), len(to)) {
		return Delete(from) + Insert(to)
	}
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			buf.WriteString(Insert(diff.Text))
		case diffpatch.DiffDelete:
			buf.WriteString(Delete(diff.Text))
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	return buf.String()
}

func Insert(s string) string { return "{+" + s + "+}" }
func Delete(s string) string { return "[-" + s + "-]" }
