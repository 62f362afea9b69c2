package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCLIListing drives the read-only commands against a fixture vault.
func TestCLIListing(t *testing.T) {
	tempDir := t.TempDir()
	bin := buildNotesBinary(t, tempDir)

	vault := filepath.Join(tempDir, "vault")
	writeVaultFixture(t, vault)
	configDir := filepath.Join(tempDir, "config")

	t.Run("List All", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "list")
		want := "meta/Tags\nNote1\nNote2\n"
		if out != want {
			t.Errorf("Expected %q, got %q", want, out)
		}
	})

	t.Run("List Subtree", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "list", "meta")
		if out != "meta/Tags\n" {
			t.Errorf("Expected only the meta subtree, got %q", out)
		}
	})

	t.Run("List By State", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "list", "--state", "draft")
		if out != "Note2\n" {
			t.Errorf("Expected only the draft note, got %q", out)
		}
	})

	t.Run("List JSON", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "list", "--json", "Note1")
		for _, want := range []string{`"name": "Note1"`, `"def"`} {
			if !strings.Contains(out, want) {
				t.Errorf("Expected %s in JSON output, got %q", want, out)
			}
		}
	})

	t.Run("Tags List", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "tags", "list")
		if out != "#def\n#ghi\n" {
			t.Errorf("Expected the tags in use, got %q", out)
		}
	})

	t.Run("Tags List JSON", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "tags", "list", "--json")
		for _, want := range []string{`"group": "abc"`, `"group": "unknown"`} {
			if !strings.Contains(out, want) {
				t.Errorf("Expected %s in JSON output, got %q", want, out)
			}
		}
	})

	t.Run("Notes By Tag", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "tags", "def")
		if out != "Note1\n" {
			t.Errorf("Expected the note tagged def, got %q", out)
		}
	})

	t.Run("Repeated Runs Are Identical", func(t *testing.T) {
		commands := [][]string{
			{"list"},
			{"list", "--json"},
			{"tags", "list"},
			{"tags", "css"},
		}
		for _, args := range commands {
			full := append([]string{"--vault", vault}, args...)
			first := mustRunNotes(t, bin, configDir, full...)
			second := mustRunNotes(t, bin, configDir, full...)
			if first != second {
				t.Errorf("Output of %v changed between runs:\n%q\n%q", args, first, second)
			}
		}
	})

	t.Run("Tags CSS", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "tags", "css")
		wants := []string{
			"--tag-group-abc: rgb(255, 0, 0);",
			`.tag[href$="/tags/def/"], .tag[href="#def"] { --tag-group: var(--tag-group-abc); }`,
			`.tag[href$="/tags/ghi/"], .tag[href="#ghi"] { --tag-group: var(--tag-group-unknown); }`,
		}
		for _, want := range wants {
			if !strings.Contains(out, want) {
				t.Errorf("Expected %s in stylesheet, got %q", want, out)
			}
		}
	})

	t.Run("Tags CSS To File", func(t *testing.T) {
		target := filepath.Join(tempDir, "out", "tag.css")
		mustRunNotes(t, bin, configDir, "--vault", vault, "tags", "css", "-o", target)
		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("Stylesheet was not written: %v", err)
		}
		if !strings.Contains(string(data), ".tag {") {
			t.Errorf("Expected base rule in stylesheet, got %q", string(data))
		}
	})

	t.Run("Show Raw", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "show", "Note1", "--raw")
		if out != "A plain note mentioning #def.\n" {
			t.Errorf("Expected the stored file, got %q", out)
		}
	})

	t.Run("Show Meta", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "show", "Note2", "--meta")
		for _, want := range []string{"title: Second", "state: draft"} {
			if !strings.Contains(out, want) {
				t.Errorf("Expected %s in metadata, got %q", want, out)
			}
		}
	})

	t.Run("Show HTML", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "show", "Note2", "--html")
		if !strings.Contains(out, "<p>Body.</p>") {
			t.Errorf("Expected rendered HTML, got %q", out)
		}
	})

	t.Run("Status", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "status")
		for _, want := range []string{"notes:", "draft:", "tags note: meta/Tags"} {
			if !strings.Contains(out, want) {
				t.Errorf("Expected %s in status, got %q", want, out)
			}
		}
	})

	t.Run("Version", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "version")
		if out != "notes version 0.2.0\n" {
			t.Errorf("Unexpected version output: %q", out)
		}
	})
}

// TestCLIConfig exercises the persisted configuration.
func TestCLIConfig(t *testing.T) {
	tempDir := t.TempDir()
	bin := buildNotesBinary(t, tempDir)

	vault := filepath.Join(tempDir, "vault")
	writeVaultFixture(t, vault)
	configDir := filepath.Join(tempDir, "config")

	t.Run("Persists the Vault Path", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "config", "--vault", vault)
		if !strings.Contains(out, "Configuration saved.") {
			t.Errorf("Expected confirmation, got %q", out)
		}

		// Later runs pick the vault up without the flag.
		out = mustRunNotes(t, bin, configDir, "list")
		if !strings.Contains(out, "Note1") {
			t.Errorf("Expected the configured vault to be used, got %q", out)
		}
	})

	t.Run("Shows the Configuration", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "config")
		if !strings.Contains(out, vault) {
			t.Errorf("Expected the vault path in output, got %q", out)
		}
		if !strings.Contains(out, "tags note:   meta/Tags") {
			t.Errorf("Expected the default tags note, got %q", out)
		}
	})

	t.Run("Rejects a Missing Vault", func(t *testing.T) {
		out, err := runNotes(t, bin, configDir, "config", "--vault", filepath.Join(tempDir, "nope"))
		if err == nil {
			t.Fatalf("Expected an error for a missing vault directory, got %q", out)
		}
		if !strings.Contains(out, "not a directory") {
			t.Errorf("Expected a validation message, got %q", out)
		}
	})
}

// TestCLICreate covers note creation through the binary.
func TestCLICreate(t *testing.T) {
	tempDir := t.TempDir()
	bin := buildNotesBinary(t, tempDir)

	vault := filepath.Join(tempDir, "vault")
	writeVaultFixture(t, vault)
	configDir := filepath.Join(tempDir, "config")

	t.Run("Creates a Note", func(t *testing.T) {
		out := mustRunNotes(t, bin, configDir, "--vault", vault, "new", "journal/today",
			"--title", "Today", "-t", "go", "--state", "draft")
		if !strings.Contains(out, filepath.Join("journal", "today.md")) {
			t.Errorf("Expected the created path, got %q", out)
		}

		meta := mustRunNotes(t, bin, configDir, "--vault", vault, "show", "journal/today", "--meta")
		for _, want := range []string{"title: Today", "state: draft", "go"} {
			if !strings.Contains(meta, want) {
				t.Errorf("Expected %s in metadata, got %q", want, meta)
			}
		}
	})

	t.Run("Refuses to Overwrite", func(t *testing.T) {
		out, err := runNotes(t, bin, configDir, "--vault", vault, "new", "journal/today")
		if err == nil {
			t.Fatalf("Expected an error, got %q", out)
		}
		if !strings.Contains(out, "already exists") {
			t.Errorf("Expected an existence complaint, got %q", out)
		}
	})
}

// TestCLIErrors checks that failures surface as messages and exit codes.
func TestCLIErrors(t *testing.T) {
	tempDir := t.TempDir()
	bin := buildNotesBinary(t, tempDir)

	vault := filepath.Join(tempDir, "vault")
	writeVaultFixture(t, vault)
	configDir := filepath.Join(tempDir, "config")

	t.Run("Missing Vault", func(t *testing.T) {
		out, err := runNotes(t, bin, configDir, "--vault", filepath.Join(tempDir, "ghost"), "list")
		if err == nil {
			t.Fatalf("Expected an error, got %q", out)
		}
		if !strings.Contains(out, "Failed to open vault: ") {
			t.Errorf("Expected the error context, got %q", out)
		}
		if !strings.Contains(out, "vault directory not found") {
			t.Errorf("Expected a vault error, got %q", out)
		}
	})

	t.Run("Bad Pattern", func(t *testing.T) {
		out, err := runNotes(t, bin, configDir, "--vault", vault, "list", "[")
		if err == nil {
			t.Fatalf("Expected an error, got %q", out)
		}
		if !strings.Contains(out, "syntax error in pattern") {
			t.Errorf("Expected a pattern error, got %q", out)
		}
	})

	t.Run("Unknown Note", func(t *testing.T) {
		out, err := runNotes(t, bin, configDir, "--vault", vault, "show", "ghost")
		if err == nil {
			t.Fatalf("Expected an error, got %q", out)
		}
		if !strings.Contains(out, "note not found") {
			t.Errorf("Expected a lookup error, got %q", out)
		}
	})
}
