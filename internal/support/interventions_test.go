package support

import (
	"reflect"
	"strings"
	"testing"

	"calmcollective/internal/analyzer"
)

func TestCrisisShortCircuitsEverything(t *testing.T) {
	sig := analyzer.Signals{
		Stress: true, Sadness: true, Anger: true,
		Lonely: true, Anxiety: true, Crisis: true,
	}
	got := Select(sig)
	if !reflect.DeepEqual(got, CrisisMessages()) {
		t.Fatalf("expected fixed crisis messages, got %v", got)
	}
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 crisis messages, got %d", len(got))
	}
}

func TestStressOnlyOrdering(t *testing.T) {
	got := Select(analyzer.Signals{Stress: true})
	want := []string{pacedBreathing, dbtStop, behavioralActivation}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNoSignalsFallback(t *testing.T) {
	got := Select(analyzer.Signals{})
	want := []string{pacedBreathing, behavioralActivation, selfCompassion}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected fallback trio, got %v", got)
	}
}

func TestLonelyOnlyGetsFallbackPadding(t *testing.T) {
	got := Select(analyzer.Signals{Lonely: true})
	want := []string{pacedBreathing, reachOut, behavioralActivation, selfCompassion}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAnxietyAndStressTruncatesToFour(t *testing.T) {
	got := Select(analyzer.Signals{Anxiety: true, Stress: true})
	want := []string{pacedBreathing, grounding54321, cognitiveDefusion, dbtStop}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected first four by priority, got %v", got)
	}
}

func TestSharedSuggestionsDeduplicated(t *testing.T) {
	// Stress and sadness both contribute behavioral activation; anger and
	// stress both contribute the STOP skill.
	got := Select(analyzer.Signals{Stress: true, Sadness: true, Anger: true})
	if len(got) > 4 {
		t.Fatalf("expected at most 4 suggestions, got %d", len(got))
	}
	seen := map[string]int{}
	for _, m := range got {
		seen[strings.ToLower(strings.TrimSpace(m))]++
	}
	for k, n := range seen {
		if n > 1 {
			t.Fatalf("duplicate suggestion %q", k)
		}
	}
	want := []string{pacedBreathing, dbtStop, behavioralActivation, selfCompassion}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
