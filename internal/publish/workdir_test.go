package publish

import (
	"errors"
	"testing"
)

func TestInDirRestoresOnSuccess(t *testing.T) {
	before := mustGetwd(t)
	target := t.TempDir()

	var inside string
	err := InDir(target, func() error {
		inside = mustGetwd(t)
		return nil
	})
	if err != nil {
		t.Fatalf("InDir: %v", err)
	}
	if realPath(t, inside) != realPath(t, target) {
		t.Errorf("inside = %s, want %s", inside, target)
	}
	if after := mustGetwd(t); after != before {
		t.Errorf("after = %s, want %s", after, before)
	}
}

func TestInDirRestoresOnError(t *testing.T) {
	before := mustGetwd(t)
	boom := errors.New("boom")

	err := InDir(t.TempDir(), func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if after := mustGetwd(t); after != before {
		t.Errorf("after = %s, want %s", after, before)
	}
}

func TestInDirRestoresOnPanic(t *testing.T) {
	before := mustGetwd(t)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = InDir(t.TempDir(), func() error { panic("kaboom") })
	}()

	if after := mustGetwd(t); after != before {
		t.Errorf("after = %s, want %s", after, before)
	}
}
