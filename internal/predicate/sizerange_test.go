package predicate

import "testing"

func TestSizeRangeBounds(t *testing.T) {
	s := NewSizeRange(100, 1000)
	cases := []struct {
		size int64
		want Decision
	}{
		{50, Reject},
		{100, Accept},
		{500, Accept},
		{1000, Accept},
		{1001, Reject},
	}
	for _, c := range cases {
		if got := s.Evaluate("/a/f", file(c.size)); got != c.want {
			t.Errorf("size %d: got %v, want %v", c.size, got, c.want)
		}
	}
}

func TestSizeRangeUnboundedMax(t *testing.T) {
	s := NewSizeRange(0, 0)
	if got := s.Evaluate("/a/f", file(1<<40)); got != Accept {
		t.Errorf("max=0 should mean unbounded, got %v", got)
	}
}

func TestSizeRangeDirectoriesAlwaysAccept(t *testing.T) {
	s := NewSizeRange(100, 200)
	if got := s.Evaluate("/a/b", dir()); got != Accept {
		t.Errorf("directory should always Accept, got %v", got)
	}
}
