package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"calmcollective/internal/analyzer"
	"calmcollective/internal/content"
	"calmcollective/internal/db"
	"calmcollective/internal/support"
	"calmcollective/internal/variety"
)

// Service composes an entry out of the analysis engine, the intervention
// selector and the variety picker, then persists it.
type Service struct {
	Store *db.Store
	Pools *content.Pools
	Rand  variety.Source
	Now   func() time.Time
}

func New(store *db.Store, pools *content.Pools) *Service {
	return &Service{
		Store: store,
		Pools: pools,
		Rand:  variety.System,
		Now:   time.Now,
	}
}

// Compose analyzes text, selects support messages and non-repeating themed
// content, stores the entry and returns it. The mood slider is recorded on
// the entry; intervention selection is driven by the detected signals alone.
func (s *Service) Compose(text string, moodSlider float64, flavor string) (*db.Entry, error) {
	flavor = strings.TrimSpace(flavor)
	if flavor == "" {
		flavor = "secular"
	}

	analysis := analyzer.Analyze(text)
	messages := support.Select(analysis.Signals)

	last, err := s.Store.Last()
	if err != nil {
		return nil, fmt.Errorf("load last entry: %w", err)
	}

	var prevQuote, prevSpiritual *string
	var prevWisdom *content.Wisdom
	if last != nil {
		prevQuote = last.Quote
		prevSpiritual = last.Spiritual
		prevWisdom = last.Wisdom
	}

	entry := db.Entry{
		ID:         uuid.NewString(),
		Timestamp:  s.Now().Format(db.TimestampLayout),
		Text:       text,
		MoodSlider: moodSlider,
		Flavor:     flavor,
		Analysis:   analysis,
		Support:    messages,
	}

	if q, ok := variety.Pick(s.Rand, s.Pools.QuoteCandidates(flavor), prevQuote); ok {
		entry.Quote = &q
	}
	if sp, ok := variety.Pick(s.Rand, s.Pools.ScriptureCandidates(flavor), prevSpiritual); ok {
		entry.Spiritual = &sp
	}
	if w, ok := variety.Pick(s.Rand, s.Pools.WisdomCandidates(flavor), prevWisdom); ok {
		entry.Wisdom = &w
	}

	if err := s.Store.Insert(entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Prompt picks a journaling prompt for the index page, with a fixed default
// when the prompt pool is empty.
func (s *Service) Prompt() string {
	if p, ok := variety.Pick(s.Rand, s.Pools.Prompts(), nil); ok {
		return p
	}
	return "How are you feeling right now?"
}
