package cache

import (
	"path"
	"testing"
)

func TestKeyJoinsResourceUserAndParams(t *testing.T) {
	got := Key("payments", "user-1", "2", "20")
	want := "portal:payments:user-1:2:20"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestInvalidationPatternScopedToUser(t *testing.T) {
	ownKey := Key("submissions", "u1", "1", "20")
	otherKey := Key("submissions", "u12", "1", "20")
	pattern := invalidationPattern("submissions", "u1")

	if ok, err := path.Match(pattern, ownKey); err != nil || !ok {
		t.Errorf("pattern %q must match the user's own key %q", pattern, ownKey)
	}
	if ok, err := path.Match(pattern, otherKey); err != nil || ok {
		t.Errorf("pattern %q must not match another user's key %q", pattern, otherKey)
	}
}
