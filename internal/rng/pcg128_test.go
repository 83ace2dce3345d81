package rng

import "testing"

// These expected words were computed independently (not via this
// package) from the same XSH-RR construction and seed contract, so a
// regression in the multiply/add/rotate plumbing shows up as a mismatch
// rather than a silent drift in what every judging session depends on.
func TestNextMatchesReferenceSequence(t *testing.T) {
	want := []uint64{
		0xd6983987e02c8acb,
		0xea097ef1adf17d13,
		0x303a896769180a3f,
		0x2f892c2503c5ddcb,
		0xab44fe3197497cab,
	}
	r := NewSeeded()
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Errorf("draw %d: got %#x, want %#x", i, got, w)
		}
	}
}

func TestNextSignedMatchesSignExtendedFirstDraw(t *testing.T) {
	r := NewSeeded()
	got := r.NextSigned(60)
	const want = -186473218586785620
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestDifferentStreamsDiverge(t *testing.T) {
	a := New(0, 1, 0, 1)
	b := New(0, 1, 0, 3)
	if a.Next() == b.Next() {
		t.Error("two generators seeded with different streams should diverge")
	}
}

func TestSameSeedReproducesSameSequence(t *testing.T) {
	a := NewSeeded()
	b := NewSeeded()
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("draw %d diverged between two identically seeded generators", i)
		}
	}
}
