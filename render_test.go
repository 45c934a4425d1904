package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

func sampleTranscript() transcript {
	return transcript{
		Title: "Tour",
		Sections: []section{
			{Key: "a", Name: "First", Lines: []line{{Text: "one"}, {Tag: tagCaught, Text: "two"}}},
			{Key: "b", Name: "Second", Lines: []line{{Tag: tagNote, Text: "three"}}},
		},
		Footer: "Done!",
	}
}

func TestFrame(t *testing.T) {
	tests := []string{"Maps", "Structs and Methods", "Größe"}

	for _, title := range tests {
		t.Run(title, func(t *testing.T) {
			lines := strings.Split(frame(title), "\n")
			if len(lines) != 3 || lines[1] != title {
				t.Fatalf("frame(%q) = %q", title, lines)
			}
			if w := runewidth.StringWidth(lines[0]); w != runewidth.StringWidth(title) {
				t.Errorf("frame(%q) bar width %d wanted %d", title, w, runewidth.StringWidth(title))
			}
		})
	}
}

func TestRenderPlain(t *testing.T) {
	want := `Tour
====

=====
First
=====
one
two

======
Second
======
three

Done!
`
	got := renderer{}.render(sampleTranscript())
	if got != want {
		t.Errorf("plain render differs:\n%s", diffText(want, got))
	}
}

func TestRenderWraps(t *testing.T) {
	r := renderer{width: 10}
	got := r.line(line{Text: "alpha beta gamma delta"})
	for _, l := range strings.Split(got, "\n") {
		if lipgloss.Width(l) > 10 {
			t.Errorf("line %q wider than 10", l)
		}
	}
}

func TestOffsets(t *testing.T) {
	for _, styled := range []bool{false, true} {
		r := renderer{styled: styled}
		tr := sampleTranscript()
		lines := strings.Split(r.render(tr), "\n")
		offsets := r.offsets(tr)
		if len(offsets) != len(tr.Sections) {
			t.Fatalf("offsets() = %v for %d sections", offsets, len(tr.Sections))
		}
		for i, off := range offsets {
			window := strings.Join(lines[off:min(off+3, len(lines))], "\n")
			if !strings.Contains(window, tr.Sections[i].Name) {
				t.Errorf("styled=%t: section %q not at line %d:\n%s", styled, tr.Sections[i].Name, off, window)
			}
		}
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want colorMode
		fail bool
	}{
		{"", colorAuto, false},
		{"auto", colorAuto, false},
		{"ALWAYS", colorAlways, false},
		{"never", colorNever, false},
		{"sometimes", "", true},
	}

	for _, test := range tests {
		got, err := parseColorMode(test.in)
		if (err != nil) != test.fail || got != test.want {
			t.Errorf("parseColorMode(%q) = (%q, %v) wanted %q", test.in, got, err, test.want)
		}
	}
}

func TestRenderFooterColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	lastLine := func(out string) string {
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		return lines[len(lines)-1]
	}

	styled := lastLine(renderer{styled: true}.render(sampleTranscript()))
	if !strings.HasPrefix(styled, "\x1b[") || !strings.Contains(styled, "Done!") {
		t.Errorf("styled footer = %q wanted an escape sequence", styled)
	}
	if plain := lastLine(renderer{}.render(sampleTranscript())); plain != "Done!" {
		t.Errorf("plain footer = %q wanted %q", plain, "Done!")
	}
}
