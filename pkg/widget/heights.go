package widget

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/matzehuels/sparkbar/pkg/errors"
)

// ParseHeights parses bar heights from text. Both a JSON array
// ("[1, 2, -3]") and a comma separated list ("1,2,-3") are accepted.
// Blank input yields no heights.
func ParseHeights(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "[") {
		var heights []float64
		if err := json.Unmarshal([]byte(s), &heights); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid heights array")
		}
		return heights, nil
	}

	fields := strings.Split(s, ",")
	heights := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "height %d: %q is not a number", i, strings.TrimSpace(f))
		}
		heights = append(heights, v)
	}
	return heights, nil
}
