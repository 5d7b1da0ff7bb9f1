package testutil

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// ExpectNoDiff reports a unified diff when got differs from want.
func ExpectNoDiff(t *testing.T, want, got string) {
	t.Helper()
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  5,
	})
	if diff != "" {
		t.Error(diff)
	}
}
