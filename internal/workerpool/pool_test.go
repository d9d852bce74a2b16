package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
)

type treeNode struct {
	path     string
	children []string
	isFile   bool
}

func TestPoolDrainsATreeAndTerminates(t *testing.T) {
	tree := map[string]treeNode{
		"/root":         {path: "/root", children: []string{"/root/a", "/root/b.txt"}},
		"/root/a":       {path: "/root/a", children: []string{"/root/a/c.txt", "/root/a/d.txt"}},
		"/root/b.txt":   {path: "/root/b.txt", isFile: true},
		"/root/a/c.txt": {path: "/root/a/c.txt", isFile: true},
		"/root/a/d.txt": {path: "/root/a/d.txt", isFile: true},
	}

	var filesFound int64
	var dirsFound int64

	onDir := func(item WorkItem, p *Pool) {
		atomic.AddInt64(&dirsFound, 1)
		node := tree[item.Path]
		for _, child := range node.children {
			childNode := tree[child]
			if childNode.isFile {
				p.SubmitFile(WorkItem{Path: child, Depth: item.Depth + 1})
			} else {
				p.SubmitDirectory(WorkItem{Path: child, Depth: item.Depth + 1})
			}
		}
	}
	onFile := func(item WorkItem) {
		atomic.AddInt64(&filesFound, 1)
	}

	pool := New(4, 64, onDir, onFile, nil)
	pool.SubmitRoot("/root")
	pool.Join()

	if got := atomic.LoadInt64(&dirsFound); got != 2 {
		t.Errorf("dirsFound = %d, want 2", got)
	}
	if got := atomic.LoadInt64(&filesFound); got != 3 {
		t.Errorf("filesFound = %d, want 3", got)
	}
}

func TestPoolRecoversWorkerPanics(t *testing.T) {
	var recovered int32
	var wg sync.WaitGroup
	wg.Add(1)

	var once sync.Once
	onPanic := func(workerID int, r interface{}) {
		atomic.StoreInt32(&recovered, 1)
		once.Do(wg.Done)
	}
	onDir := func(item WorkItem, p *Pool) {
		panic("boom")
	}
	onFile := func(item WorkItem) {}

	pool := New(2, 8, onDir, onFile, onPanic)
	pool.SubmitRoot("/root")

	wg.Wait()
	if atomic.LoadInt32(&recovered) != 1 {
		t.Error("expected the panic handler to run")
	}
	pool.Join()
}

func TestPoolEmptyTreeTerminatesImmediately(t *testing.T) {
	onDir := func(item WorkItem, p *Pool) {}
	onFile := func(item WorkItem) {}

	pool := New(3, 8, onDir, onFile, nil)
	pool.SubmitRoot("/empty")
	pool.Join()
}

func TestPoolManyConcurrentSubmissions(t *testing.T) {
	const fanout = 50
	var filesFound int64

	onDir := func(item WorkItem, p *Pool) {
		if item.Depth >= 1 {
			return
		}
		for i := 0; i < fanout; i++ {
			p.SubmitFile(WorkItem{Path: item.Path, Depth: item.Depth + 1})
		}
	}
	onFile := func(item WorkItem) {
		atomic.AddInt64(&filesFound, 1)
	}

	pool := New(8, 16, onDir, onFile, nil)
	pool.SubmitRoot("/root")
	pool.Join()

	if got := atomic.LoadInt64(&filesFound); got != fanout {
		t.Errorf("filesFound = %d, want %d", got, fanout)
	}
}
