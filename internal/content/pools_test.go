package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeAsset(t *testing.T, dir, name string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal asset: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
}

func TestQuoteCandidatesFlavorThenSecularThenDefault(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, QuotesFile, map[string][]string{
		"secular": {"Small steps count."},
		"islam":   {"Verily, with hardship comes ease."},
	})
	p := NewPools(dir)

	if got := p.QuoteCandidates("islam"); got[0] != "Verily, with hardship comes ease." {
		t.Fatalf("expected flavor pool, got %v", got)
	}
	if got := p.QuoteCandidates("hindu"); got[0] != "Small steps count." {
		t.Fatalf("expected secular fallback, got %v", got)
	}
}

func TestQuoteCandidatesMissingFileUsesDefault(t *testing.T) {
	p := NewPools(t.TempDir())
	got := p.QuoteCandidates("secular")
	if !reflect.DeepEqual(got, []string{DefaultQuote}) {
		t.Fatalf("expected default quote, got %v", got)
	}
}

func TestScriptureCandidatesMayBeEmpty(t *testing.T) {
	p := NewPools(t.TempDir())
	if got := p.ScriptureCandidates("christian"); len(got) != 0 {
		t.Fatalf("expected empty candidates, got %v", got)
	}
}

func TestAddWisdomCreatesFlavorKey(t *testing.T) {
	dir := t.TempDir()
	p := NewPools(dir)

	w := Wisdom{Text: "Sedikit demi sedikit, lama-lama menjadi bukit.", Author: "Peribahasa"}
	if err := p.AddWisdom("cultural_nusantara", w); err != nil {
		t.Fatalf("add wisdom: %v", err)
	}

	got := p.WisdomCandidates("cultural_nusantara")
	if len(got) != 1 || got[0] != w {
		t.Fatalf("expected appended wisdom back, got %v", got)
	}
}

func TestAddScriptureAppends(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, ScripturesFile, map[string][]string{"buddhist": {"first"}})
	p := NewPools(dir)

	if err := p.AddScripture("buddhist", "second"); err != nil {
		t.Fatalf("add scripture: %v", err)
	}
	got := p.ScriptureCandidates("buddhist")
	if !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Fatalf("expected append to existing pool, got %v", got)
	}
}

func TestCorruptAssetFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, WisdomFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt asset: %v", err)
	}
	p := NewPools(dir)
	if got := p.WisdomCandidates("secular"); len(got) != 0 {
		t.Fatalf("expected empty candidates from corrupt file, got %v", got)
	}
}

func TestFlavorLabelFallsBackToKey(t *testing.T) {
	if FlavorLabel("islam") != "Spiritual (Islam)" {
		t.Fatalf("expected friendly label")
	}
	if FlavorLabel("stoic") != "stoic" {
		t.Fatalf("expected unknown key passthrough")
	}
}
