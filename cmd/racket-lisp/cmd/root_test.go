package cmd

import "testing"

func TestSubcommandsAreRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "repl", "serve", "docs"} {
		if !names[want] {
			t.Errorf("expected %q to be registered under the root command", want)
		}
	}
}
