package walk

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"
)

func TestFormatMatch(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"{}", "/data/logs/app.log"},
		{"{base}", "app.log"},
		{"{dir}", "/data/logs"},
		{"{base} in {dir}", "app.log in /data/logs"},
		{`{""}`, `"/data/logs/app.log"`},
		{`{"base"} {"dir"}`, `"app.log" "/data/logs"`},
		{"no placeholders", "no placeholders"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			if got := formatMatch(tt.template, "/data/logs/app.log"); got != tt.want {
				t.Errorf("formatMatch(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestFormatObserver(t *testing.T) {
	root := "/tree"
	fsys := memTree(t, root, "a.txt", "sub/b.txt")

	var buf bytes.Buffer
	s := NewSearcher(WithLister(NewAferoLister(fsys)))
	s.RegisterMatchObserver(FormatObserver("{base} ({dir})", &buf))

	if err := s.Search(root, "*.txt", false); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	want := "a.txt (/tree)\nb.txt (/tree/sub)\n"
	if buf.String() != want {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestExecObserver(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	root := "/tree"
	fsys := memTree(t, root, "a.txt")

	var buf bytes.Buffer
	logger, logs := observedLogger()
	s := NewSearcher(WithLister(NewAferoLister(fsys)))
	s.RegisterMatchObserver(ExecObserver(context.Background(), "echo found {base}", &buf, logger))

	if err := s.Search(root, "*.txt", false); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "found a.txt" {
		t.Errorf("Unexpected command output %q", got)
	}
	if logs.Len() != 0 {
		t.Errorf("Unexpected log entries: %v", logs.All())
	}
}

func TestExecObserverFailureDoesNotStopWalk(t *testing.T) {
	root := "/tree"
	fsys := memTree(t, root, "a.txt", "b.txt")

	logger, logs := observedLogger()
	s := NewSearcher(WithLister(NewAferoLister(fsys)))
	s.RegisterMatchObserver(ExecObserver(context.Background(), "/nonexistent/command {}", &bytes.Buffer{}, logger))
	found := collectMatches(s)

	if err := s.Search(root, "*.txt", false); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(*found) != 2 {
		t.Errorf("Expected both files to be reported, got %v", *found)
	}
	if logs.Len() != 2 {
		t.Errorf("Expected one error per match, got %d", logs.Len())
	}
}
