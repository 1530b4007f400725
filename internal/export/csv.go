package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"calmcollective/internal/db"
)

var csvHeader = []string{"timestamp", "mood_slider", "flavor", "mood_score", "positive", "negative", "text"}

// WriteCSV writes one row per entry with the analysis columns flattened and
// newlines in the entry text collapsed to spaces.
func WriteCSV(w io.Writer, entries []db.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.Timestamp,
			strconv.FormatFloat(e.MoodSlider, 'f', -1, 64),
			e.Flavor,
			e.Analysis.MoodScore.String(),
			strconv.Itoa(e.Analysis.Positive),
			strconv.Itoa(e.Analysis.Negative),
			strings.TrimSpace(strings.ReplaceAll(e.Text, "\n", " ")),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
