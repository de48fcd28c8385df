package walk

import "testing"

func TestSearchArgsTransitions(t *testing.T) {
	args := newSearchArgs("/root", "*.txt", false)

	if args.SearchPath() != "/root" || args.PreviousPath() != "/root" {
		t.Fatalf("Unexpected initial paths %q, %q", args.SearchPath(), args.PreviousPath())
	}
	if args.FileName() != "" {
		t.Errorf("Expected no file name before a match, got %q", args.FileName())
	}

	args.matchedFilePath = "/root/a.txt"
	if args.FileName() != "a.txt" {
		t.Errorf("Unexpected file name %q", args.FileName())
	}

	args.moveTo("/root/sub")
	if args.SearchPath() != "/root/sub" || args.PreviousPath() != "/root" {
		t.Errorf("Unexpected paths after descent: %q, %q", args.SearchPath(), args.PreviousPath())
	}
	if args.MatchedFilePath() != "" {
		t.Errorf("Matched path survived a directory transition: %q", args.MatchedFilePath())
	}
}

func TestCancelIsMonotonic(t *testing.T) {
	args := newSearchArgs("/root", "*", false)
	if args.Cancelled() {
		t.Fatal("New args must not start cancelled")
	}

	args.Cancel()
	args.moveTo("/root/sub")
	args.Cancel()
	if !args.Cancelled() {
		t.Error("Cancel was lost")
	}

	if !newSearchArgs("/root", "*", true).Cancelled() {
		t.Error("Initial cancel flag was ignored")
	}
}
