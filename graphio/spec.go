package graphio

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pathwise/gt/simulate"
)

// ParseOverrides converts textual override specs of the form "from:to:weight"
// into typed overrides. The simulation engine itself never parses strings.
func ParseOverrides(specs []string) ([]simulate.Override[string], error) {
	out := make([]simulate.Override[string], 0, len(specs))
	for _, s := range specs {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, errors.Errorf("invalid override %q: expected from:to:weight", s)
		}
		w, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, errors.Errorf("invalid weight %q in override %q", parts[2], s)
		}
		out = append(out, simulate.Override[string]{From: parts[0], To: parts[1], Weight: w})
	}

	return out, nil
}

// ParseDrops converts textual drop specs of the form "from:to" into typed
// drops.
func ParseDrops(specs []string) ([]simulate.Drop[string], error) {
	out := make([]simulate.Drop[string], 0, len(specs))
	for _, s := range specs {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid drop %q: expected from:to", s)
		}
		out = append(out, simulate.Drop[string]{From: parts[0], To: parts[1]})
	}

	return out, nil
}
