package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vaughan0/go-ini"
)

func TestConfigApply(t *testing.T) {
	f, err := ini.Load(strings.NewReader(`
[bee]
dict = words.txt, extra.txt
exclude = S
workers = 3
centers = aeiou
color = never

[other]
workers = x
`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig()
	if err := cfg.apply(f.Section("bee")); err != nil {
		t.Fatal(err)
	}
	want := config{
		dicts:   []string{"words.txt", "extra.txt"},
		exclude: "s",
		workers: 3,
		centers: "aeiou",
		color:   "never",
	}
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(config{})); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestConfigSetErrors(t *testing.T) {
	for _, tt := range []struct {
		key, val string
	}{
		{"dict", " , "},
		{"workers", "many"},
		{"workers", "0"},
		{"color", "sometimes"},
		{"bogus", "1"},
	} {
		cfg := defaultConfig()
		if err := cfg.set(tt.key, tt.val); err == nil {
			t.Errorf("set(%q, %q): got nil error", tt.key, tt.val)
		}
	}
}

func TestConfigLoadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "bee.ini")
	if err := os.WriteFile(name, []byte("[bee]\nworkers = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig()
	if err := cfg.loadFile(name); err != nil {
		t.Fatal(err)
	}
	if cfg.workers != 2 {
		t.Errorf("got workers=%d; want 2", cfg.workers)
	}

	err := cfg.loadFile(filepath.Join(dir, "missing.ini"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("loading missing file: got %v; want not-exist error", err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a.txt,,b.txt , ")
	if diff := cmp.Diff([]string{"a.txt", "b.txt"}, got); diff != "" {
		t.Errorf("splitList (-want +got):\n%s", diff)
	}
}
