package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff between a golden fragment and rendered
// output. Trailing newlines in the golden file are ignored.
func CompareGolden(want, got string) string {
	return cmp.Diff(strings.TrimRight(want, "\n"), strings.TrimRight(got, "\n"))
}

// AssertGolden compares output with the golden file at path, rewriting the
// file instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, output string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(output+"\n")) {
		return
	}
	want := string(MustReadGolden(t, path))
	if diff := CompareGolden(want, output); diff != "" {
		t.Fatalf("output mismatch %s (-want +got):\n%s", path, diff)
	}
}
