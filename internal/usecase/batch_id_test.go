package usecase

import "testing"

func TestSnowflakeBatchIDs(t *testing.T) {
	g, err := NewSnowflakeBatchIDs(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.Next()
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}

	if _, err := NewSnowflakeBatchIDs(4096); err == nil {
		t.Fatalf("expected error for out of range node")
	}
}
