package routes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rule is the external (pre-build) form of a route, as found in the
// JSON rules document.
type Rule struct {
	Prefix  string `json:"prefix"`
	Backend string `json:"backend"`
	Weight  int32  `json:"weight"`
}

type rulesDoc struct {
	Routes []Rule `json:"routes"`
}

// ErrEmptyRules is returned when a rules document contains no routes.
var ErrEmptyRules = fmt.Errorf("routes: rules document has no routes")

// Parse decodes and validates a JSON rules document.
func Parse(data []byte) ([]Rule, error) {
	var doc rulesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("routes: decode rules: %w", err)
	}
	if len(doc.Routes) == 0 {
		return nil, ErrEmptyRules
	}

	for i, r := range doc.Routes {
		if !strings.HasPrefix(r.Prefix, "/") {
			return nil, fmt.Errorf("routes: rule %d: prefix %q must start with /", i, r.Prefix)
		}
		if r.Backend == "" {
			return nil, fmt.Errorf("routes: rule %d: empty backend", i)
		}
	}

	return doc.Routes, nil
}
