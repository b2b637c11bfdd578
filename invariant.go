package piece

import (
	"fmt"
	"log"
)

// checkInvariants panics if the piece chain is inconsistent. It does
// nothing in release builds.
func (t *Text) checkInvariants() {
	if !checkedExecution {
		return
	}
	if err := t.validate(); err != nil {
		log.Printf("piece: invariant violated: %v", err)
		panic(err)
	}
}

// validate walks the chain in both directions. Every walk is bounded by the
// arena size so a corrupted cycle is reported rather than looping forever.
func (t *Text) validate() error {
	if s := t.data(sentinel).span; !s.IsEmpty() {
		return fmt.Errorf("sentinel has non-empty span %v", s)
	}
	limit := len(t.pieces)

	n, steps := 0, 0
	for p := sentinel; ; {
		d := t.data(p)
		if int(d.next) >= limit || int(d.prev) >= limit {
			return fmt.Errorf("piece %d links outside the arena (prev %d, next %d)", p, d.prev, d.next)
		}
		if t.data(d.next).prev != p {
			return fmt.Errorf("prev(next(%d)) = %d", p, t.data(d.next).prev)
		}
		if t.data(d.prev).next != p {
			return fmt.Errorf("next(prev(%d)) = %d", p, t.data(d.prev).next)
		}
		if p = d.next; p == sentinel {
			break
		}
		l := t.data(p).span.Len()
		if l == 0 {
			return fmt.Errorf("piece %d is empty", p)
		}
		n += l
		if steps++; steps > limit {
			return fmt.Errorf("forward chain does not return to the sentinel")
		}
	}
	if n != t.len {
		return fmt.Errorf("forward length %d, want %d", n, t.len)
	}

	n, steps = 0, 0
	for p := t.data(sentinel).prev; p != sentinel; p = t.data(p).prev {
		n += t.data(p).span.Len()
		if steps++; steps > limit {
			return fmt.Errorf("backward chain does not return to the sentinel")
		}
	}
	if n != t.len {
		return fmt.Errorf("backward length %d, want %d", n, t.len)
	}
	return nil
}
