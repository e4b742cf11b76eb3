package ui

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStream swaps *target for a pipe while fn runs and returns what was
// written to it.
func captureStream(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	orig := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	*target = w
	defer func() { *target = orig }()

	fn()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

// Success and header lines share stdout with payload output; warnings and
// errors must stay on stderr so redirecting stdout captures only data.
func TestPrintStreamRouting(t *testing.T) {
	var stdout string
	stderr := captureStream(t, &os.Stderr, func() {
		stdout = captureStream(t, &os.Stdout, func() {
			PrintHeader("heading")
			PrintSuccess("good", "wrote file")
			PrintWarning("iffy", "skipped block")
			PrintError("bad", "scan failed")
		})
	})

	for _, want := range []string{"heading", "good", "wrote file"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	for _, leak := range []string{"iffy", "bad"} {
		if strings.Contains(stdout, leak) {
			t.Errorf("diagnostic %q leaked to stdout:\n%s", leak, stdout)
		}
	}
	for _, want := range []string{"iffy", "skipped block", "bad", "scan failed"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}
