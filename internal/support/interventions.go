package support

import (
	"strings"

	"calmcollective/internal/analyzer"
)

// Short, evidence-informed self-care suggestions (CBT/DBT/ACT/grounding).
// These are general skills, not medical advice.
const (
	pacedBreathing       = "Breathing — 4-6: Inhale 4s through the nose, exhale 6s through the mouth. Repeat 6 rounds."
	grounding54321       = "Grounding — 5-4-3-2-1: Name 5 things you see, 4 you feel, 3 you hear, 2 you smell, 1 you taste. Do it slowly."
	cognitiveDefusion    = "ACT — Cognitive defusion: Notice the thought, name it (e.g., ‘I’m having the thought that…’), and watch it pass like a cloud for 60 seconds."
	dbtStop              = "DBT — STOP skill: Stop. Take a step back. Observe. Proceed mindfully. Give yourself 1 minute before acting or replying."
	behavioralActivation = "Behavioral activation: Do one tiny valued action now (stand up, drink water, open a window, put one cup away)."
	selfCompassion       = "Self-compassion: Place a hand on your chest and say, ‘This is hard, and I’m doing my best. May I be kind to myself right now.’"
	reachOut             = "Connection: Message one trusted person ‘Hey, could use a quick hello today.’"
	angerSpace           = "Take space for 2 minutes; unclench your jaw and hands."
)

// CrisisMessages is the fixed sequence returned whenever a crisis phrase was
// detected. It overrides every other selection rule.
func CrisisMessages() []string {
	return []string{
		"⚠️ If you are in immediate danger or thinking about harming yourself: contact local emergency services or a trusted person now.",
		"You are not alone. Please reach out to someone you trust.",
		grounding54321,
	}
}

// Select maps signals to at most 4 suggestions in clinical-category priority
// order: crisis short-circuits, then anxiety, stress, sadness, anger, lonely.
// The result is deduplicated by trimmed lower-cased text, first occurrence
// wins.
func Select(sig analyzer.Signals) []string {
	if sig.Crisis {
		return CrisisMessages()
	}

	// Always offer paced breathing for down-regulation.
	out := []string{pacedBreathing}

	if sig.Anxiety {
		out = append(out, grounding54321, cognitiveDefusion)
	}
	if sig.Stress {
		out = append(out, dbtStop, behavioralActivation)
	}
	if sig.Sadness {
		out = append(out, behavioralActivation, selfCompassion)
	}
	if sig.Anger {
		out = append(out, angerSpace, dbtStop)
	}
	if sig.Lonely {
		out = append(out, reachOut)
	}

	// Fallbacks so a quiet entry still gets something practical.
	if len(out) < 3 {
		out = append(out, behavioralActivation, selfCompassion)
	}

	return dedupe(out, 4)
}

func dedupe(messages []string, limit int) []string {
	seen := make(map[string]struct{}, len(messages))
	uniq := make([]string, 0, limit)
	for _, m := range messages {
		key := strings.ToLower(strings.TrimSpace(m))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, m)
		if len(uniq) == limit {
			break
		}
	}
	return uniq
}
