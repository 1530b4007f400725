package analyzer

import (
	"math"
	"strconv"
	"strings"
)

// Score is a mood score in [-1, 1]. It serializes with canonical formatting:
// two decimal places at most, no trailing zeros, and whole values without a
// decimal point, so an exact -1.0 is indistinguishable from the integer -1.
type Score float64

func scoreFromRatio(raw float64) Score {
	if raw > 1 {
		raw = 1
	}
	if raw < -1 {
		raw = -1
	}
	return Score(math.Round(raw*100) / 100)
}

func (s Score) String() string {
	v := float64(s)
	nearest := math.Round(v)
	if math.Abs(v-nearest) < 1e-12 {
		return strconv.Itoa(int(nearest))
	}
	out := strconv.FormatFloat(v, 'f', 2, 64)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}

func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Score) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*s = Score(v)
	return nil
}
