package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	if c.Logger == nil {
		t.Fatal("New() should create a logger")
	}
	if c.Logger.GetLevel() != log.InfoLevel {
		t.Errorf("logger level = %v, want %v", c.Logger.GetLevel(), log.InfoLevel)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "photosheet" {
		t.Errorf("root Use = %q, want %q", root.Use, "photosheet")
	}

	for _, name := range []string{"compose", "inspect", "cache", "completion"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}

func TestComposeCommandFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.composeCommand()

	for _, name := range []string{"output", "add-filenames", "seed", "border-width", "font", "profile", "no-cache"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("compose command missing --%s flag", name)
		}
	}
}

func TestNewRunnerNoCache(t *testing.T) {
	c := New(io.Discard, LogInfo)
	runner, err := c.newRunner(true)
	if err != nil {
		t.Fatalf("newRunner(true) error: %v", err)
	}
	defer runner.Close()
	if runner == nil {
		t.Fatal("newRunner(true) returned nil runner")
	}
}
