package helper

import (
	"sync"
	"testing"
)

func TestNextOrderNo(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty table", nil, "001"},
		{"first follow-up", []string{"001"}, "002"},
		{"unordered", []string{"002", "001", "003"}, "004"},
		{"zero padding kept", []string{"041"}, "042"},
		{"grows past padding", []string{"999"}, "1000"},
		{"four digit numbers", []string{"1000", "999"}, "1001"},
		{"garbage rows ignored", []string{"abc", "", "007"}, "008"},
		{"duplicates from past races", []string{"005", "005"}, "006"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nextOrderNo(tc.existing); got != tc.want {
				t.Errorf("nextOrderNo(%v) = %q, want %q", tc.existing, got, tc.want)
			}
		})
	}
}

func TestNextOrderNoSequentialIsStrictlyIncreasing(t *testing.T) {
	var book []string
	prev := 0
	for i := 0; i < 50; i++ {
		no := nextOrderNo(book)
		book = append(book, no)

		if len(no) < 3 {
			t.Fatalf("order no %q shorter than 3 digits", no)
		}
		n := 0
		for _, r := range no {
			n = n*10 + int(r-'0')
		}
		if n <= prev {
			t.Fatalf("order no %d not strictly greater than %d", n, prev)
		}
		prev = n
	}
	if book[0] != "001" {
		t.Errorf("first order got %q, want 001", book[0])
	}
}

// Two checkouts that read the order table before either has written its
// header compute the same number. That is the accepted trade-off of the
// read-then-max allocation; it must duplicate the display number and
// nothing else.
func TestNextOrderNoConcurrentAllocationsCanCollide(t *testing.T) {
	book := []string{"001", "002"}

	snapshotA := append([]string(nil), book...)
	snapshotB := append([]string(nil), book...)

	var mu sync.Mutex
	var allocated []string
	var wg sync.WaitGroup
	start := make(chan struct{})

	for _, snapshot := range [][]string{snapshotA, snapshotB} {
		wg.Add(1)
		go func(snapshot []string) {
			defer wg.Done()
			<-start
			no := nextOrderNo(snapshot)
			mu.Lock()
			allocated = append(allocated, no)
			mu.Unlock()
		}(snapshot)
	}
	close(start)
	wg.Wait()

	if len(allocated) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(allocated))
	}
	if allocated[0] != "003" || allocated[1] != "003" {
		t.Errorf("same pre-state must yield the same number, got %v", allocated)
	}

	// Both land in the table; the next non-concurrent checkout moves on
	book = append(book, allocated...)
	if got := nextOrderNo(book); got != "004" {
		t.Errorf("allocation after collision = %q, want 004", got)
	}
}
