package viking

import (
	"os"
	"strings"
	"testing"
)

func TestStageResource(t *testing.T) {
	path, err := StageResource("note body", "meeting")
	if err != nil {
		t.Fatal(err)
	}
	defer Discard(path)
	if !strings.HasSuffix(path, "_meeting.md") {
		t.Fatalf("expected _meeting.md suffix, got %v", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "note body" {
		t.Fatalf("expected staged content %q, got %q", "note body", string(data))
	}

	other, err := StageResource("note body", "meeting")
	if err != nil {
		t.Fatal(err)
	}
	defer Discard(other)
	if other == path {
		t.Fatalf("expected a unique path per staged resource")
	}

	anon, err := StageResource("unnamed", "")
	if err != nil {
		t.Fatal(err)
	}
	defer Discard(anon)
	if !strings.HasSuffix(anon, ".md") || strings.HasSuffix(anon, "_.md") {
		t.Fatalf("expected a plain .md suffix, got %v", anon)
	}
}

func TestDiscard(t *testing.T) {
	path, err := StageResource("ephemeral", "")
	if err != nil {
		t.Fatal(err)
	}
	Discard(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected staged file to be removed")
	}
	Discard(path)
	Discard("")
}
