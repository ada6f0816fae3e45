package ids_test

import (
	"testing"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
)

func TestUUIDUnique(t *testing.T) {
	gen := ids.UUID{}
	seen := make(map[string]bool)
	for n := 0; n < 1000; n++ {
		id := gen.NewID()
		if id == "" {
			t.Fatalf("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestSequenceDeterministic(t *testing.T) {
	gen := &ids.Sequence{Prefix: "n"}
	for i, want := range []string{"n-1", "n-2", "n-3"} {
		if got := gen.NewID(); got != want {
			t.Fatalf("id %d = %q, want %q", i, got, want)
		}
	}
}
