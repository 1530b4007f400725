package analyzer

import "strings"

// Signals are the boolean emotional-category flags derived from one entry.
type Signals struct {
	Stress  bool `json:"stress"`
	Sadness bool `json:"sadness"`
	Anger   bool `json:"anger"`
	Lonely  bool `json:"lonely"`
	Anxiety bool `json:"anxiety"`
	Crisis  bool `json:"crisis"`
}

// Result is the analysis of a single journal entry.
type Result struct {
	Tokens    []string `json:"tokens"`
	Positive  int      `json:"positive"`
	Negative  int      `json:"negative"`
	MoodScore Score    `json:"mood_score"`
	Signals   Signals  `json:"signals"`
}

// Analyze tokenizes text, counts positive/negative lexicon hits, derives
// the normalized mood score and the per-category signals. Deterministic and
// stateless; empty input yields zero counts, not an error.
func Analyze(text string) Result {
	tokens := Tokenize(text)
	if tokens == nil {
		tokens = []string{}
	}

	var pos, neg int
	for _, tok := range tokens {
		if _, ok := positiveWords[tok]; ok {
			pos++
		}
		if _, ok := negativeWords[tok]; ok {
			neg++
		}
	}

	score := Score(0)
	if pos+neg > 0 {
		score = scoreFromRatio(float64(pos-neg) / float64(pos+neg))
	}

	return Result{
		Tokens:    tokens,
		Positive:  pos,
		Negative:  neg,
		MoodScore: score,
		Signals:   detectSignals(tokens),
	}
}

func detectSignals(tokens []string) Signals {
	var sig Signals
	for _, tok := range tokens {
		if _, ok := stressWords[tok]; ok {
			sig.Stress = true
		}
		if _, ok := sadnessWords[tok]; ok {
			sig.Sadness = true
		}
		if _, ok := angerWords[tok]; ok {
			sig.Anger = true
		}
		if _, ok := lonelyWords[tok]; ok {
			sig.Lonely = true
		}
		if _, ok := anxietyWords[tok]; ok {
			sig.Anxiety = true
		}
	}

	// Crisis phrases are searched in the space-joined token sequence, so the
	// original punctuation no longer separates words. Existing behavior, kept.
	joined := strings.Join(tokens, " ")
	for _, phrase := range crisisPhrases {
		if strings.Contains(joined, phrase) {
			sig.Crisis = true
			break
		}
	}
	return sig
}
