package syntax

import "testing"

func TestPunctuatedItems(t *testing.T) {
	comma := Token{Kind: TkComma}
	p := Punctuated[string]{
		{Node: "a", Sep: &comma},
		{Node: "b", Sep: &comma},
		{Node: "c", Sep: nil},
	}
	items := p.Items()
	want := []string{"a", "b", "c"}
	if len(items) != len(want) {
		t.Fatalf("Items() = %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("Items()[%d] = %q, want %q", i, items[i], want[i])
		}
	}
}

func TestPunctuatedEmpty(t *testing.T) {
	var p Punctuated[int]
	if items := p.Items(); len(items) != 0 {
		t.Fatalf("Items() on empty Punctuated = %d items, want 0", len(items))
	}
}

func TestPunctuatedTrailingSeparatorIsPreserved(t *testing.T) {
	// The lossless shape keeps the final element's separator as a field
	// the caller can inspect, rather than discarding it — this is what
	// lets Print reproduce a trailing comma exactly.
	comma := Token{Kind: TkComma}
	p := Punctuated[string]{
		{Node: "only", Sep: &comma},
	}
	if p[len(p)-1].Sep == nil {
		t.Fatalf("trailing separator was dropped")
	}
	if p[len(p)-1].Sep.Kind != TkComma {
		t.Fatalf("trailing separator kind = %v, want TkComma", p[len(p)-1].Sep.Kind)
	}
}
