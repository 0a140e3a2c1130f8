package cmd

import "testing"

func TestRootCommandRegistration(t *testing.T) {
	want := []string{"start", "stop", "status", "workspaces", "records", "export", "edit", "delete", "clear"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestWorkspacesSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range workspacesCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"rename", "count"} {
		if !names[name] {
			t.Errorf("workspaces subcommand %q is not registered", name)
		}
	}
}
