package variety

import (
	"math/rand/v2"
	"testing"
)

type scripted struct {
	draws []int
	i     int
}

func (s *scripted) IntN(n int) int {
	d := s.draws[s.i%len(s.draws)]
	s.i++
	return d % n
}

func TestPickEmptyPool(t *testing.T) {
	if _, ok := Pick[string](System, nil, nil); ok {
		t.Fatalf("expected no pick from empty pool")
	}
}

func TestPickSingleCandidateMayRepeat(t *testing.T) {
	prev := "a"
	got, ok := Pick(System, []string{"a"}, &prev)
	if !ok || got != "a" {
		t.Fatalf("expected sole candidate back, got %q ok=%v", got, ok)
	}
}

func TestPickNeverRepeatsPrevious(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	prev := "a"
	for i := 0; i < 1000; i++ {
		got, ok := Pick(rng, []string{"a", "b", "c"}, &prev)
		if !ok {
			t.Fatalf("expected a pick")
		}
		if got == "a" {
			t.Fatalf("iteration %d repeated previous pick", i)
		}
	}
}

func TestPickPreviousNotInPoolUsesFullPool(t *testing.T) {
	prev := "z"
	src := &scripted{draws: []int{0}}
	got, ok := Pick(src, []string{"a", "b", "c"}, &prev)
	if !ok || got != "a" {
		t.Fatalf("expected full-pool draw at index 0, got %q", got)
	}
}

func TestPickExclusionShrinksPool(t *testing.T) {
	prev := "b"
	src := &scripted{draws: []int{1}}
	got, _ := Pick(src, []string{"a", "b", "c"}, &prev)
	if got != "c" {
		t.Fatalf("expected index 1 of [a c], got %q", got)
	}
}

func TestPickAllCandidatesEqualPrevious(t *testing.T) {
	prev := "a"
	got, ok := Pick(System, []string{"a", "a"}, &prev)
	if !ok || got != "a" {
		t.Fatalf("expected fallback to full pool, got %q ok=%v", got, ok)
	}
}

func TestPickStructFieldwiseEquality(t *testing.T) {
	type wisdom struct {
		Text   string
		Author string
	}
	prev := wisdom{Text: "Be here now.", Author: "Ram Dass"}
	pool := []wisdom{
		prev,
		{Text: "Be here now.", Author: "Unknown"},
	}
	for i := 0; i < 100; i++ {
		got, ok := Pick(System, pool, &prev)
		if !ok {
			t.Fatalf("expected a pick")
		}
		if got == prev {
			t.Fatalf("expected field-wise exclusion of previous wisdom")
		}
	}
}

func TestPickNilSourceFallsBackToSystem(t *testing.T) {
	got, ok := Pick[string](nil, []string{"only"}, nil)
	if !ok || got != "only" {
		t.Fatalf("expected system source fallback, got %q ok=%v", got, ok)
	}
}
