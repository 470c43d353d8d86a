package server

import (
	"fmt"
	"testing"
	"time"
)

func entry(n int) HistoryEntry {
	return HistoryEntry{
		ID:      fmt.Sprintf("id-%d", n),
		Topic:   fmt.Sprintf("topic %d", n),
		Content: fmt.Sprintf("# Issue %d", n),
	}
}

func TestStoreTouch(t *testing.T) {
	st := newStore(time.Hour)

	id := st.touch("")
	if id == "" {
		t.Fatal("touch(\"\") returned empty id")
	}
	if got := st.touch(id); got != id {
		t.Errorf("touch(existing) = %q, want %q", got, id)
	}
	if got := st.touch("unknown"); got == "unknown" || got == id {
		t.Errorf("touch(unknown) = %q, want a fresh id", got)
	}
}

func TestStoreRecentNewestFirstCapped(t *testing.T) {
	st := newStore(time.Hour)
	id := st.touch("")

	for i := 1; i <= historyLimit+2; i++ {
		st.append(id, entry(i))
	}

	got := st.recent(id)
	if len(got) != historyLimit {
		t.Fatalf("recent() = %d entries, want %d", len(got), historyLimit)
	}
	for i := 0; i < historyLimit; i++ {
		want := fmt.Sprintf("topic %d", historyLimit+2-i)
		if got[i].Topic != want {
			t.Errorf("recent()[%d].Topic = %q, want %q", i, got[i].Topic, want)
		}
	}
}

func TestStoreFind(t *testing.T) {
	st := newStore(time.Hour)
	id := st.touch("")
	st.append(id, entry(1))
	st.append(id, entry(2))

	got, ok := st.find(id, "id-1")
	if !ok || got.Topic != "topic 1" {
		t.Errorf("find(id-1) = %+v, %v", got, ok)
	}
	if _, ok := st.find(id, "missing"); ok {
		t.Error("find(missing entry) = true, want false")
	}
	if _, ok := st.find("missing session", "id-1"); ok {
		t.Error("find(missing session) = true, want false")
	}

	// Entries older than the display cap stay reachable.
	for i := 3; i <= 9; i++ {
		st.append(id, entry(i))
	}
	if _, ok := st.find(id, "id-1"); !ok {
		t.Error("find(id-1) = false after more appends, want true")
	}
}

func TestStoreAppendUnknownSession(t *testing.T) {
	st := newStore(time.Hour)
	st.append("ghost", entry(1))
	if got := st.recent("ghost"); got != nil {
		t.Errorf("recent(ghost) = %v, want nil", got)
	}
}

func TestStorePrune(t *testing.T) {
	st := newStore(time.Hour)
	current := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return current }

	stale := st.touch("")
	st.append(stale, entry(1))

	current = current.Add(40 * time.Minute)
	live := st.touch("")
	st.append(live, entry(2))

	// stale has been idle 70m, live 30m.
	current = current.Add(30 * time.Minute)
	if got := st.prune(); got != 1 {
		t.Errorf("prune() = %d, want 1", got)
	}
	if got := st.recent(stale); got != nil {
		t.Errorf("stale session still has entries: %v", got)
	}
	if got := st.recent(live); len(got) != 1 {
		t.Errorf("live session lost entries: %v", got)
	}
}
