package traversal

import "testing"

func TestRegexpPolicyInclude(t *testing.T) {
	r, err := NewRegexp(`/src/`, "")
	if err != nil {
		t.Fatalf("NewRegexp: %v", err)
	}
	if !r.ShouldEnterDirectory("/repo/src/pkg", nil) {
		t.Error("/repo/src/pkg should match include pattern")
	}
	if r.ShouldEnterDirectory("/repo/docs", nil) {
		t.Error("/repo/docs should not match include pattern")
	}
}

func TestRegexpPolicyExcludeWins(t *testing.T) {
	r, err := NewRegexp("", `node_modules`)
	if err != nil {
		t.Fatalf("NewRegexp: %v", err)
	}
	if r.ShouldEnterDirectory("/repo/node_modules/pkg", nil) {
		t.Error("node_modules should be excluded")
	}
	if !r.ShouldEnterDirectory("/repo/src", nil) {
		t.Error("/repo/src should be allowed")
	}
}

func TestRegexpPolicyCompileError(t *testing.T) {
	if _, err := NewRegexp("(bad", ""); err == nil {
		t.Error("expected compile error")
	}
}
