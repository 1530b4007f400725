package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Wisdom is an attributed saying. Comparable so the variety picker can
// exclude the previous pick field-wise.
type Wisdom struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

const (
	QuotesFile     = "quotes.json"
	ScripturesFile = "scriptures.json"
	WisdomFile     = "wisdom.json"
	PromptsFile    = "prompts.json"
)

// DefaultQuote is served when a flavor has no quote pool at all.
const DefaultQuote = "You are doing the best you can."

const fallbackFlavor = "secular"

// Pools reads themed content from JSON asset files on every call, so admin
// appends are visible without a restart.
type Pools struct {
	dir string
}

func NewPools(assetsDir string) *Pools {
	return &Pools{dir: assetsDir}
}

// QuoteCandidates resolves flavor, falling back to secular and then to the
// fixed default quote, so the result is never empty.
func (p *Pools) QuoteCandidates(flavor string) []string {
	m := loadStringMap(filepath.Join(p.dir, QuotesFile))
	if c := m[flavor]; len(c) > 0 {
		return c
	}
	if c := m[fallbackFlavor]; len(c) > 0 {
		return c
	}
	return []string{DefaultQuote}
}

// ScriptureCandidates resolves flavor with a secular fallback. May be empty.
func (p *Pools) ScriptureCandidates(flavor string) []string {
	m := loadStringMap(filepath.Join(p.dir, ScripturesFile))
	if c := m[flavor]; len(c) > 0 {
		return c
	}
	return m[fallbackFlavor]
}

// WisdomCandidates resolves flavor with a secular fallback. May be empty.
func (p *Pools) WisdomCandidates(flavor string) []Wisdom {
	m := loadWisdomMap(filepath.Join(p.dir, WisdomFile))
	if c := m[flavor]; len(c) > 0 {
		return c
	}
	return m[fallbackFlavor]
}

// Prompts returns the journaling prompt list, empty when absent.
func (p *Pools) Prompts() []string {
	var prompts []string
	loadJSON(filepath.Join(p.dir, PromptsFile), &prompts)
	return prompts
}

// AddScripture appends a scripture to the given flavor pool, creating the
// flavor key when needed.
func (p *Pools) AddScripture(flavor, text string) error {
	path := filepath.Join(p.dir, ScripturesFile)
	m := loadStringMap(path)
	if m == nil {
		m = map[string][]string{}
	}
	m[flavor] = append(m[flavor], text)
	return saveJSON(path, m)
}

// AddWisdom appends an attributed saying to the given flavor pool.
func (p *Pools) AddWisdom(flavor string, w Wisdom) error {
	path := filepath.Join(p.dir, WisdomFile)
	m := loadWisdomMap(path)
	if m == nil {
		m = map[string][]Wisdom{}
	}
	m[flavor] = append(m[flavor], w)
	return saveJSON(path, m)
}

func loadStringMap(path string) map[string][]string {
	var m map[string][]string
	loadJSON(path, &m)
	return m
}

func loadWisdomMap(path string) map[string][]Wisdom {
	var m map[string][]Wisdom
	loadJSON(path, &m)
	return m
}

// loadJSON is permissive: a missing or malformed file leaves v untouched.
func loadJSON(path string, v any) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(raw, v)
}

func saveJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
