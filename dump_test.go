package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDumpTranscript(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		marker string
	}{
		{"tour.yaml", "sections:"},
		{"tour.yml", "sections:"},
		{"tour.json", `"sections": [`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(dir, test.name)
			want := sampleTranscript()
			if err := dumpTranscript(want, path); err != nil {
				t.Fatalf("dumpTranscript(%q): %v", path, err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), test.marker) || !strings.Contains(string(data), "caught") {
				t.Errorf("%s does not look right:\n%s", test.name, data)
			}

			got, err := loadTranscript(path)
			if err != nil {
				t.Fatalf("loadTranscript(%q): %v", path, err)
			}
			if !slices.Equal(got.sectionNames(), want.sectionNames()) {
				t.Errorf("loaded sections %q wanted %q", got.sectionNames(), want.sectionNames())
			}
			if got.Sections[0].Lines[1].Tag != tagCaught {
				t.Errorf("line tag = %v wanted caught", got.Sections[0].Lines[1].Tag)
			}
		})
	}
}

func TestLoadTranscriptMissing(t *testing.T) {
	if _, err := loadTranscript(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("loadTranscript of a missing file succeeded")
	}
}

func TestLoadTranscriptUnknownTag(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"bad.yaml": "title: Tour\nsections:\n  - key: a\n    name: First\n    lines:\n      - tag: bogus\n        text: one\n",
		"bad.json": `{"title": "Tour", "sections": [{"key": "a", "name": "First", "lines": [{"tag": "bogus", "text": "one"}]}]}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := loadTranscript(path)
			if err == nil || !strings.Contains(err.Error(), `unknown line tag "bogus"`) {
				t.Errorf("loadTranscript(%s) = %v wanted unknown line tag error", name, err)
			}
		})
	}
}
