package syntax

import "testing"

func TestSpanDetached(t *testing.T) {
	d := Detached()
	if !d.IsDetached() {
		t.Fatalf("Detached().IsDetached() = false, want true")
	}
	if NewSpan(0, 5).IsDetached() {
		t.Fatalf("NewSpan(0, 5).IsDetached() = true, want false")
	}
}

func TestSpanLen(t *testing.T) {
	if got := NewSpan(3, 10).Len(); got != 7 {
		t.Fatalf("Len() = %d, want 7", got)
	}
	if got := Detached().Len(); got != 0 {
		t.Fatalf("Detached().Len() = %d, want 0", got)
	}
}

func TestSpanMerge(t *testing.T) {
	a := NewSpan(2, 5)
	b := NewSpan(4, 9)
	if got := a.Merge(b); got != NewSpan(2, 9) {
		t.Fatalf("Merge() = %v, want %v", got, NewSpan(2, 9))
	}
	if got := b.Merge(a); got != NewSpan(2, 9) {
		t.Fatalf("Merge() is not commutative: got %v, want %v", got, NewSpan(2, 9))
	}
	// A detached span merged with a real one yields the real one.
	if got := Detached().Merge(a); got != a {
		t.Fatalf("Detached().Merge(a) = %v, want %v", got, a)
	}
	if got := a.Merge(Detached()); got != a {
		t.Fatalf("a.Merge(Detached()) = %v, want %v", got, a)
	}
}

func TestSpanString(t *testing.T) {
	if got := NewSpan(1, 4).String(); got != "Span(1..4)" {
		t.Fatalf("String() = %q, want %q", got, "Span(1..4)")
	}
	if got := Detached().String(); got != "Span(detached)" {
		t.Fatalf("String() = %q, want %q", got, "Span(detached)")
	}
}
