package rules

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is the shape of an optional --rules YAML file. It can only add
// entries to DomainFixes/EmailFixes; it never removes or replaces an entry
// already present in the fixed tables, so every address that normalized a
// given way before the overlay was introduced keeps normalizing that way.
type Overlay struct {
	DomainFixes map[string]string `yaml:"domain_fixes"`
	EmailFixes  map[string]string `yaml:"email_fixes"`
}

// LoadOverlay reads and parses filePath. It neither merges the entries into
// the fixed tables nor counts them; callers build merged copies with
// MergedDomainFixes/MergedEmailFixes so the package-level tables stay
// canonical between runs (relevant for tests that run multiple pipelines
// with different overlays in the same process).
func LoadOverlay(filePath string) (*Overlay, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, err
	}
	return &ov, nil
}

// MergedDomainFixes returns DomainFixes with ov's entries added. An ov entry
// is ignored if it would overwrite a key already present in DomainFixes.
func MergedDomainFixes(ov *Overlay) map[string]string {
	merged := make(map[string]string, len(DomainFixes)+len(ov.domainFixes()))
	for k, v := range DomainFixes {
		merged[k] = v
	}
	for k, v := range ov.domainFixes() {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return merged
}

// MergedEmailFixes returns EmailFixes with ov's entries added, under the
// same never-overwrite rule as MergedDomainFixes.
func MergedEmailFixes(ov *Overlay) map[string]string {
	merged := make(map[string]string, len(EmailFixes)+len(ov.emailFixes()))
	for k, v := range EmailFixes {
		merged[k] = v
	}
	for k, v := range ov.emailFixes() {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return merged
}

func (ov *Overlay) domainFixes() map[string]string {
	if ov == nil {
		return nil
	}
	return ov.DomainFixes
}

func (ov *Overlay) emailFixes() map[string]string {
	if ov == nil {
		return nil
	}
	return ov.EmailFixes
}
