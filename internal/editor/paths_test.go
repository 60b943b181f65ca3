package editor

import (
	"errors"
	"path/filepath"
	"testing"
)

func fakeHome() (string, error) { return "/home/dev", nil }

func envWith(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestResolveUserDir(t *testing.T) {
	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{"macOS", "darwin", nil, filepath.Join("/home/dev", "Library", "Application Support", "Cursor", "User")},
		{"linux", "linux", nil, filepath.Join("/home/dev", ".config", "Cursor", "User")},
		{"windows", "windows", map[string]string{"APPDATA": `C:\Users\dev\AppData\Roaming`}, filepath.Join(`C:\Users\dev\AppData\Roaming`, "Cursor", "User")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveUserDir(tt.goos, envWith(tt.env), fakeHome)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestResolveUserDir_WindowsWithoutAppData(t *testing.T) {
	for _, env := range []map[string]string{nil, {"APPDATA": ""}} {
		_, err := ResolveUserDir("windows", envWith(env), fakeHome)
		if !errors.Is(err, ErrMissingEnv) {
			t.Errorf("env %v: expected ErrMissingEnv, got %v", env, err)
		}
	}
}

func TestResolveUserDir_Unsupported(t *testing.T) {
	for _, goos := range []string{"freebsd", "plan9", "js", ""} {
		_, err := ResolveUserDir(goos, envWith(nil), fakeHome)
		if !errors.Is(err, ErrUnsupportedOS) {
			t.Errorf("%q: expected ErrUnsupportedOS, got %v", goos, err)
		}
	}
}

func TestResolveUserDir_HomeError(t *testing.T) {
	boom := errors.New("no home")
	_, err := ResolveUserDir("linux", envWith(nil), func() (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped home error, got %v", err)
	}
}

func TestUserDir_EnvOverride(t *testing.T) {
	t.Setenv("CURSOR_SYNC_USER_DIR", "/tmp/cursor-user")
	dir, err := UserDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/cursor-user" {
		t.Errorf("expected /tmp/cursor-user, got %s", dir)
	}
}
