package runner

import "github.com/merlinc16/emaildedup/internal/rules"

// LoadRulesOverlay reads the optional --rules YAML file and returns it, or
// nil if no path was given. Errors are the caller's to report as a fatal
// (the overlay, unlike the input graph, is operator-controlled and a typo
// in its path should stop the run rather than silently skip the overlay).
func LoadRulesOverlay(path string) (*rules.Overlay, error) {
	if path == "" {
		return nil, nil
	}
	return rules.LoadOverlay(path)
}
