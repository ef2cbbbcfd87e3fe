package gitremote

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/acme/widgets.git", "acme/widgets"},
		{"https://github.com/acme/widgets", "acme/widgets"},
		{"git@github.com:acme/widgets.git", "acme/widgets"},
		{"git@github.com:acme/widgets", "acme/widgets"},
		{"https://github.com/vercel/next.js.git", "vercel/next.js"},
		{"git@github.com:vercel/next.js.git", "vercel/next.js"},
	}

	for _, tt := range tests {
		got, err := ParseRemoteURL(tt.url)
		if err != nil {
			t.Fatalf("ParseRemoteURL(%q) error: %v", tt.url, err)
		}
		if got != tt.want {
			t.Errorf("ParseRemoteURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestParseRemoteURL_Invalid(t *testing.T) {
	if _, err := ParseRemoteURL("not-a-remote"); err == nil {
		t.Fatal("expected error for unparseable remote URL")
	}
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit error: %v", err)
	}
	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://github.com/acme/widgets.git"},
	})
	if err != nil {
		t.Fatalf("CreateRemote error: %v", err)
	}

	got, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if got != "acme/widgets" {
		t.Errorf("Detect = %q, want %q", got, "acme/widgets")
	}
}

func TestDetect_NoRemote(t *testing.T) {
	dir := t.TempDir()

	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("PlainInit error: %v", err)
	}

	if _, err := Detect(dir); err == nil {
		t.Fatal("expected error when origin remote is missing")
	}
}

func TestDetect_NotARepository(t *testing.T) {
	if _, err := Detect(t.TempDir()); err == nil {
		t.Fatal("expected error outside a git repository")
	}
}
