package ui

import (
	"fmt"
	"testing"
)

func TestMessageLogRecentNewestFirst(t *testing.T) {
	ml := NewMessageLog(10)
	ml.Add("first")
	ml.Add("second")
	ml.Add("third")

	recent := ml.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Text != "third" || recent[1].Text != "second" {
		t.Errorf("recent = %q, %q", recent[0].Text, recent[1].Text)
	}
}

func TestMessageLogDropsOldestPastLimit(t *testing.T) {
	ml := NewMessageLog(3)
	for i := 0; i < 5; i++ {
		ml.Add(fmt.Sprintf("msg-%d", i))
	}

	recent := ml.Recent(10)
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	if recent[0].Text != "msg-4" || recent[2].Text != "msg-2" {
		t.Errorf("recent = %v", recent)
	}
}

func TestMessageLogIgnoresEmpty(t *testing.T) {
	ml := NewMessageLog(5)
	ml.Add("")
	ml.Add("real")

	if recent := ml.Recent(5); len(recent) != 1 {
		t.Errorf("expected 1 entry, got %d", len(recent))
	}
}
