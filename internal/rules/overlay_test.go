package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOverlayParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := "domain_fixes:\n  exampie.com: example.com\nemail_fixes:\n  foo@bar.com: foo.bar@bar.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ov, err := LoadOverlay(path)
	require.NoError(t, err)
	require.Equal(t, "example.com", ov.DomainFixes["exampie.com"])
	require.Equal(t, "foo.bar@bar.com", ov.EmailFixes["foo@bar.com"])
}

func TestLoadOverlayMissingFile(t *testing.T) {
	_, err := LoadOverlay("/nonexistent/path/rules.yaml")
	require.Error(t, err)
}

func TestMergedDomainFixesNeverOverwritesExistingKey(t *testing.T) {
	ov := &Overlay{DomainFixes: map[string]string{"qmail.com": "should-not-apply.com"}}
	merged := MergedDomainFixes(ov)
	require.Equal(t, DomainFixes["qmail.com"], merged["qmail.com"])
	require.NotEqual(t, "should-not-apply.com", merged["qmail.com"])
}

func TestMergedDomainFixesAddsNewKey(t *testing.T) {
	ov := &Overlay{DomainFixes: map[string]string{"newbatch.gqv": "newbatch.gov"}}
	merged := MergedDomainFixes(ov)
	require.Equal(t, "newbatch.gov", merged["newbatch.gqv"])
	require.Equal(t, DomainFixes["qmail.com"], merged["qmail.com"])
}

func TestMergedFixesNilOverlay(t *testing.T) {
	require.Equal(t, len(DomainFixes), len(MergedDomainFixes(nil)))
	require.Equal(t, len(EmailFixes), len(MergedEmailFixes(nil)))
}
