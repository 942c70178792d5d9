package util

import (
	"sync"
	"testing"
)

func TestShouldShowProgress(t *testing.T) {
	if ShouldShowProgress(true, true) {
		t.Fatal("no must win over force")
	}
	if !ShouldShowProgress(true, false) {
		t.Fatal("force must enable progress")
	}
}

func TestProgressAdvanceConcurrent(t *testing.T) {
	p := NewProgress(100, false)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				p.Advance()
			}
		}()
	}
	wg.Wait()
	if got := p.done.Load(); got != 100 {
		t.Fatalf("expected 100 advances, got %d", got)
	}
}

func TestPercent(t *testing.T) {
	if percent(0, 0) != 100 {
		t.Fatal("empty total should report 100%")
	}
	if percent(1, 4) != 25 {
		t.Fatalf("unexpected percent: %d", percent(1, 4))
	}
}
