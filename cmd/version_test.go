package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	t.Run("version command structure", func(t *testing.T) {
		if versionCmd.Use != "version" {
			t.Errorf("Expected Use %q, got %q", "version", versionCmd.Use)
		}
		if versionCmd.Short == "" || versionCmd.Long == "" {
			t.Error("version command should have Short and Long descriptions")
		}
	})

	t.Run("version command output", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"version"})
		defer func() {
			rootCmd.SetOut(nil)
			rootCmd.SetArgs(nil)
		}()

		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("version command failed: %v", err)
		}

		for _, want := range []string{"GuessGame ", "Commit: ", "Build Time: "} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("version output missing %q:\n%s", want, out.String())
			}
		}
	})
}
