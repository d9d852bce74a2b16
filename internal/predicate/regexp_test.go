package predicate

import "testing"

func TestRegexpIncludeOnly(t *testing.T) {
	r, err := NewRegexp(`\.go$`, "")
	if err != nil {
		t.Fatalf("NewRegexp: %v", err)
	}
	if got := r.Evaluate("/a/main.go", file(0)); got != Accept {
		t.Errorf("main.go: got %v, want Accept", got)
	}
	if got := r.Evaluate("/a/main.py", file(0)); got != Reject {
		t.Errorf("main.py: got %v, want Reject", got)
	}
}

func TestRegexpExcludeWins(t *testing.T) {
	r, err := NewRegexp(`.*`, `vendor/`)
	if err != nil {
		t.Fatalf("NewRegexp: %v", err)
	}
	if got := r.Evaluate("/a/vendor/pkg/main.go", file(0)); got != Reject {
		t.Errorf("excluded path: got %v, want Reject", got)
	}
	if got := r.Evaluate("/a/pkg/main.go", file(0)); got != Accept {
		t.Errorf("non-excluded path: got %v, want Accept", got)
	}
}

func TestRegexpCompileError(t *testing.T) {
	if _, err := NewRegexp(`(unterminated`, ""); err == nil {
		t.Error("expected a compile error for an invalid pattern")
	}
}

func TestRegexpDirectoriesAlwaysAccept(t *testing.T) {
	r, err := NewRegexp(`\.go$`, "")
	if err != nil {
		t.Fatalf("NewRegexp: %v", err)
	}
	if got := r.Evaluate("/a/pkg", dir()); got != Accept {
		t.Errorf("directory should always Accept, got %v", got)
	}
}
