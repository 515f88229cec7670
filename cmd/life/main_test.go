package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPatternsCommand(t *testing.T) {
	out, err := execute(t, "patterns")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"default", "glider", "block", "blinker", "empty", "random"} {
		if !strings.Contains(out, name+"\n") {
			t.Errorf("patterns output missing %q:\n%s", name, out)
		}
	}
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--pattern", "block", "-g", "5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "pattern block after 5 generations, population 4") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if strings.Count(out, "#") != 4 {
		t.Errorf("expected 4 alive cells in grid dump:\n%s", out)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	if _, err := execute(t, "run", "--pattern", "nope"); err == nil {
		t.Error("expected error for unknown pattern")
	}
	if _, err := execute(t, "run", "--rate", "0"); err == nil {
		t.Error("expected error for zero rate")
	}
	if _, err := execute(t, "run", "-g", "-1"); err == nil {
		t.Error("expected error for negative generation count")
	}
}
