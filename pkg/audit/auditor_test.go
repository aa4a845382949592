package audit

import (
	"os"
	"path/filepath"
	"testing"

	"pwd-audit/pkg/analyzer"
)

func writeAuditFile(t *testing.T, lines string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "passwords.txt")
	if err := os.WriteFile(name, []byte(lines), 0o600); err != nil {
		t.Fatalf("Should not fail writing fixture: %s", err)
	}
	return name
}

func TestProcessFile(t *testing.T) {
	name := writeAuditFile(t, "password\npassword\nabc123\n\nTr33s&Skies_2025!long\nK9v!Qz2$Wm7&Xp4#\n")

	auditor, err := NewAuditor(nil, 2, 3)
	if err != nil {
		t.Fatalf("Should not fail building auditor: %s", err)
	}
	defer auditor.Close()

	summary, err := auditor.ProcessFile(name)
	if err != nil {
		t.Fatalf("Should not fail processing file: %s", err)
	}

	if summary.Total != 5 {
		t.Errorf("Should audit 5 non-blank lines, have %d", summary.Total)
	}
	if summary.ByCategory[analyzer.VeryWeak] != 3 {
		t.Errorf("Should count 3 Very Weak lines, have %d", summary.ByCategory[analyzer.VeryWeak])
	}
	if summary.ByCategory[analyzer.Excellent] != 2 {
		t.Errorf("Should count 2 Excellent lines, have %d", summary.ByCategory[analyzer.Excellent])
	}

	counted := 0
	for _, n := range summary.ByCategory {
		counted += n
	}
	if counted != summary.Total {
		t.Errorf("Category counts should add up to the total, have %d of %d", counted, summary.Total)
	}

	if len(summary.Weakest) != 3 {
		t.Fatalf("Should retain the 3 weakest samples, have %d", len(summary.Weakest))
	}
	if summary.Weakest[0].Category != analyzer.VeryWeak {
		t.Errorf("Weakest sample should be Very Weak, have %s", summary.Weakest[0].Category)
	}
	for i := 1; i < len(summary.Weakest); i++ {
		if summary.Weakest[i].EntropyBitsAdjusted < summary.Weakest[i-1].EntropyBitsAdjusted {
			t.Errorf("Weakest samples should be sorted ascending")
		}
	}
}

func TestProcessFileMissing(t *testing.T) {
	auditor, err := NewAuditor(nil, 1, 1)
	if err != nil {
		t.Fatalf("Should not fail building auditor: %s", err)
	}
	defer auditor.Close()

	if _, err = auditor.ProcessFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Errorf("Should fail on a missing input file")
	}
}
