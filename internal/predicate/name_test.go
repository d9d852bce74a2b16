package predicate

import "testing"

func TestNameSubstringMatch(t *testing.T) {
	n := NewName("report", true)
	if got := n.Evaluate("/a/monthly_report.csv", file(0)); got != Accept {
		t.Errorf("got %v, want Accept", got)
	}
	if got := n.Evaluate("/a/invoice.csv", file(0)); got != Reject {
		t.Errorf("got %v, want Reject", got)
	}
}

func TestNameCaseInsensitive(t *testing.T) {
	n := NewName("REPORT", false)
	if got := n.Evaluate("/a/Report.csv", file(0)); got != Accept {
		t.Errorf("got %v, want Accept", got)
	}
}

func TestNameEmptyAcceptsEverything(t *testing.T) {
	n := NewName("", true)
	if got := n.Evaluate("/a/anything.txt", file(0)); got != Accept {
		t.Errorf("empty substring should accept everything, got %v", got)
	}
}

func TestNameDirectoriesAlwaysAccept(t *testing.T) {
	n := NewName("report", true)
	if got := n.Evaluate("/a/b", dir()); got != Accept {
		t.Errorf("directory should always Accept, got %v", got)
	}
}
