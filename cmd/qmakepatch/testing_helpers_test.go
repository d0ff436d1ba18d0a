package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/joshuapare/qmakepatch/internal/testutil"
	"github.com/joshuapare/qmakepatch/pkg/qmake"
)

// testImagePath writes a synthetic Qt 4 qmake image and returns its path
// along with the builder that describes its layout.
func testImagePath(t *testing.T) (string, *testutil.Builder) {
	t.Helper()
	b := testutil.Qt4Image()
	return b.WriteFile(t, "qmake"), b
}

// resetFlags restores every flag variable to its default. Flag values
// survive between executions of the global command tree.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	logFile = ""
	logLevel = ""
	backup = false
	backupSuffix = qmake.DefaultBackupSuffix
	dryRun = false
	profilePath = ""

	cmds := append([]*cobra.Command{rootCmd}, rootCmd.Commands()...)
	for _, cmd := range cmds {
		if f := cmd.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	var fnErr error
	stdout, _ := captureStreams(t, func() { fnErr = fn() })
	return stdout, fnErr
}

// captureStreams captures stdout and stderr while running a function
func captureStreams(t *testing.T, fn func()) (string, string) {
	t.Helper()

	origStdout, origStderr := os.Stdout, os.Stderr

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout, os.Stderr = outW, errW

	// Drain both pipes concurrently so large help output cannot block fn.
	outCh := drain(outR)
	errCh := drain(errR)

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = origStdout, origStderr

	return <-outCh, <-errCh
}

func drain(r io.Reader) <-chan string {
	ch := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		ch <- buf.String()
	}()
	return ch
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
