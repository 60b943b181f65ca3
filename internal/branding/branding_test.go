package branding

import (
	"bytes"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "cursor-sync" {
		t.Errorf("CLIName() = %q, want cursor-sync", got)
	}
	if got := EditorName(); got != "Cursor" {
		t.Errorf("EditorName() = %q, want Cursor", got)
	}
	if got := EditorCLI(); got != "cursor" {
		t.Errorf("EditorCLI() = %q, want cursor", got)
	}
}

// Every key in branding.yaml must map to a field read by an accessor.
func TestEmbeddedFileHasNoUnknownKeys(t *testing.T) {
	dec := yaml.NewDecoder(bytes.NewReader(rawBranding))
	dec.KnownFields(true)
	var b brand
	if err := dec.Decode(&b); err != nil {
		t.Fatalf("branding.yaml: %v", err)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("user_dir"); got != "CURSOR_SYNC_USER_DIR" {
		t.Errorf("EnvVar(user_dir) = %q, want CURSOR_SYNC_USER_DIR", got)
	}
}
