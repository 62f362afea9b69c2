package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildNotesBinary builds the notes binary in the specified directory and
// returns its path.
func buildNotesBinary(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "notes.exe")
	buildCmd := exec.Command("go", "build", "-o", bin, "../../cmd/notes")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build notes: %v\n%s", err, string(out))
	}
	return bin
}

// writeVaultFixture populates dir with the vault the CLI tests run against.
func writeVaultFixture(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"Note1.md": "A plain note mentioning #def.\n",
		"Note2.md": "---\ntitle: Second\nstate: draft\ntags: [ghi]\n---\n\nBody.\n",
		"meta/Tags.md": `# Tags

| group | color          |
| ----- | -------------- |
| #abc  | rgb(255, 0, 0) |

| tag  |
| ---- |
| #abc |
| #def |
`,
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

// runNotes invokes the binary with an isolated configuration directory and
// returns the combined output.
func runNotes(t *testing.T, bin, configDir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), "NOTES_CONFIG_DIR="+configDir)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// mustRunNotes is runNotes, failing the test on a non-zero exit.
func mustRunNotes(t *testing.T, bin, configDir string, args ...string) string {
	t.Helper()
	out, err := runNotes(t, bin, configDir, args...)
	if err != nil {
		t.Fatalf("notes %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}
