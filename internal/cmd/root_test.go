package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	var stdout bytes.Buffer

	cmd := rootCmd
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command --help returned error: %v", err)
	}

	output := stdout.String()

	expectedStrings := []string{
		"claude-run",
		"ANTHROPIC_BASE_URL",
		"Usage:",
		"Available Commands:",
		"--provider",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("help output missing expected string %q\nGot: %s", expected, output)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	var stdout bytes.Buffer

	cmd := rootCmd
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--version"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command --version returned error: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "claude-run") {
		t.Errorf("version output missing 'claude-run'\nGot: %s", output)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := []string{"setup", "launch", "env", "providers", "config", "forget"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
