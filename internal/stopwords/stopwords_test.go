package stopwords

import "testing"

func TestNew_ContainsBaseWords(t *testing.T) {
	s := New()
	for _, w := range []string{"the", "and", "however", "al"} {
		if !s.Contains(w) {
			t.Fatalf("expected base set to contain %q", w)
		}
	}
	if s.Contains("cat") {
		t.Fatalf("did not expect base set to contain %q", "cat")
	}
}

func TestNew_MergesExtras(t *testing.T) {
	s := New("Study", "  results ", "")
	if !s.Contains("study") {
		t.Fatalf("expected extras to be lowercased and merged")
	}
	if !s.Contains("results") {
		t.Fatalf("expected extras to be trimmed and merged")
	}
	if s.Contains("") {
		t.Fatalf("empty extras must be ignored")
	}
}

func TestNew_ReturnsIndependentSets(t *testing.T) {
	a := New()
	b := New("zebra")
	if a.Contains("zebra") {
		t.Fatalf("extras leaked into a separately constructed set")
	}
	if !b.Contains("zebra") {
		t.Fatalf("expected %q in the extended set", "zebra")
	}
}
