package score

import (
	"reflect"
	"strings"
	"testing"
)

func TestRelevance_HeroSection(t *testing.T) {
	// Two fields, weights 2 and 1. Field 0 leads with the query (+25*2) and
	// contains the term (+5*2); field 1 only contains the term (+5*1).
	got := Relevance("hero", []string{"Hero Section", "Main hero section content"})
	if got != 65 {
		t.Errorf("score = %d, want 65", got)
	}
}

func TestRelevance_Tiers(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   int
	}{
		{
			// exact (100) + single term contained (5), weight 1
			"exact match",
			"about us",
			[]string{"About Us"},
			100 + 5 + 5,
		},
		{
			// case-sensitive prefix (50) + term (5), weight 1
			"literal prefix",
			"hero",
			[]string{"hero banner large"},
			50 + 5,
		},
		{
			// neither exact nor any prefix; one of two terms contained
			"partial term",
			"hero banner",
			[]string{"site banner"},
			5,
		},
		{
			"no match",
			"pricing",
			[]string{"Hero Section", "Main content"},
			0,
		},
		{
			"empty query",
			"   ",
			[]string{"Hero Section"},
			0,
		},
		{
			"empty fields skipped",
			"hero",
			[]string{"", "Hero Section"},
			25 + 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relevance(tt.query, tt.fields); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRelevance_FirstFieldExactOutranksPartial(t *testing.T) {
	fields := []string{"Landing Page", "A page about landing strategy and more"}
	exact := Relevance("landing page", fields)
	partial := Relevance("strategy", fields)
	if exact <= partial {
		t.Errorf("exact first-field match (%d) must outrank lower-field partial (%d)", exact, partial)
	}
}

func TestRelevance_Deterministic(t *testing.T) {
	query := "hero section"
	fields := []string{"Hero Section", "Main hero section content", "misc"}
	a := Relevance(query, fields)
	b := Relevance(query, fields)
	if a != b {
		t.Errorf("scores differ: %d vs %d", a, b)
	}
	ha := Highlights(query, fields)
	hb := Highlights(query, fields)
	if !reflect.DeepEqual(ha, hb) {
		t.Errorf("highlights differ: %v vs %v", ha, hb)
	}
}

func TestHighlights_Cap(t *testing.T) {
	fields := []string{
		"hero one", "hero two", "hero three", "hero four", "hero five",
	}
	got := Highlights("hero", fields)
	if len(got) > MaxHighlights {
		t.Errorf("%d highlights, cap is %d", len(got), MaxHighlights)
	}
	if len(got) != MaxHighlights {
		t.Errorf("%d highlights, want %d", len(got), MaxHighlights)
	}
}

func TestHighlights_Window(t *testing.T) {
	long := strings.Repeat("a", 50) + " hero " + strings.Repeat("b", 50)
	got := Highlights("hero", []string{long})
	if len(got) != 1 {
		t.Fatalf("got %d highlights", len(got))
	}
	s := got[0]
	if !strings.HasPrefix(s, "...") || !strings.HasSuffix(s, "...") {
		t.Errorf("truncated snippet missing ellipses: %q", s)
	}
	if !strings.Contains(s, "hero") {
		t.Errorf("snippet %q lost the match", s)
	}
}

func TestHighlights_NoLeftTruncation(t *testing.T) {
	got := Highlights("hero", []string{"hero at the very start of a rather long piece of text here"})
	if len(got) != 1 {
		t.Fatalf("got %d highlights", len(got))
	}
	if strings.HasPrefix(got[0], "...") {
		t.Errorf("snippet %q should not be truncated on the left", got[0])
	}
}

func TestHighlights_ExpandingCaseRunes(t *testing.T) {
	// 'Ⱥ' (U+023A) is two bytes but its lowercase 'ⱥ' (U+2C65) is three, so an
	// offset found in a lowered copy of the field runs past the original
	// string. The match must be located in the field itself.
	field := strings.Repeat("Ⱥ", 40) + "x"
	got := Highlights("x", []string{field})
	if len(got) != 1 {
		t.Fatalf("got %d highlights", len(got))
	}
	if !strings.HasPrefix(got[0], "...") || !strings.HasSuffix(got[0], "x") {
		t.Errorf("snippet = %q, want left-truncated window ending in the match", got[0])
	}
}

func TestHighlights_OffsetAfterExpandingRunes(t *testing.T) {
	got := Highlights("hero", []string{"ȺȺ Hero"})
	if len(got) != 1 {
		t.Fatalf("got %d highlights", len(got))
	}
	if got[0] != "ȺȺ Hero" {
		t.Errorf("snippet = %q, want the whole short field", got[0])
	}
}

func TestHighlights_Dedup(t *testing.T) {
	// Both terms produce the identical window over a short field.
	got := Highlights("hero hero", []string{"hero"})
	if len(got) != 1 {
		t.Errorf("duplicate snippets not deduplicated: %v", got)
	}
}
