package main

import (
	"testing"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"up", "down", "status", "create"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected subcommand %q, got %v (err=%v)", name, cmd, err)
		}
	}
}

func TestRootCmd_CreateRequiresName(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"create", "--dir", t.TempDir()})

	if err := root.Execute(); err == nil {
		t.Fatal("expected create without a name to fail")
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"sideways"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected unknown command to fail")
	}
}
