package analyzer

import (
	"encoding/json"
	"testing"
)

func TestScoreStringFormatting(t *testing.T) {
	cases := []struct {
		raw  float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{0.5, "0.5"},
		{-0.5, "-0.5"},
		{1.0 / 3.0, "0.33"},
		{-2.0 / 3.0, "-0.67"},
		{0.999999, "1"},
		{-1.5, "-1"},
		{2.0, "1"},
	}
	for _, c := range cases {
		got := scoreFromRatio(c.raw).String()
		if got != c.want {
			t.Fatalf("scoreFromRatio(%v): expected %q, got %q", c.raw, c.want, got)
		}
	}
}

func TestScoreJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(scoreFromRatio(0.5))
	if err != nil {
		t.Fatalf("marshal score: %v", err)
	}
	if string(raw) != "0.5" {
		t.Fatalf("expected 0.5 without trailing zeros, got %s", raw)
	}

	var s Score
	if err := json.Unmarshal([]byte("-0.67"), &s); err != nil {
		t.Fatalf("unmarshal score: %v", err)
	}
	if s != Score(-0.67) {
		t.Fatalf("expected -0.67, got %v", s)
	}

	whole, err := json.Marshal(scoreFromRatio(-1))
	if err != nil {
		t.Fatalf("marshal whole score: %v", err)
	}
	if string(whole) != "-1" {
		t.Fatalf("expected integer rendering for -1, got %s", whole)
	}
}
