package parallel

import "sync/atomic"
import "testing"

func TestForEach(t *testing.T) {
	for _, limit := range []int{-1, 0, 1, 3, 8, 1000} {
		var visits = make([]atomic.Int32, 101)
		ForEach(len(visits), limit, func(i int) {
			visits[i].Add(1)
		})
		for i := range visits {
			if n := visits[i].Load(); n != 1 {
				t.Errorf("limit %d: index %d visited %d times", limit, i, n)
			}
		}
	}
}

func TestForEachEmpty(t *testing.T) {
	ForEach(0, 4, func(i int) {
		t.Errorf("body called for empty range")
	})
}

func TestForEachPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("panic in body was swallowed")
		}
	}()
	ForEach(10, 4, func(i int) {
		if i == 7 {
			panic("boom")
		}
	})
}

func TestWorkers(t *testing.T) {
	if Workers() < 1 {
		t.Errorf("Workers() = %d", Workers())
	}
}
