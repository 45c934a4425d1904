package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type transcript struct {
	Title    string    `json:"title" yaml:"title"`
	Sections []section `json:"sections" yaml:"sections"`
	Footer   string    `json:"footer" yaml:"footer"`
}

func (t transcript) sectionNames() []string {
	names := make([]string, 0, len(t.Sections))
	for _, section := range t.Sections {
		names = append(names, section.Name)
	}
	return names
}

type section struct {
	Key   string `json:"key" yaml:"key"`
	Name  string `json:"name" yaml:"name"`
	Lines []line `json:"lines" yaml:"lines"`
}

type lineTag int

const (
	tagPlain lineTag = iota
	tagNote
	tagCaught
)

func (t lineTag) String() string {
	switch t {
	case tagNote:
		return "note"
	case tagCaught:
		return "caught"
	default:
		return "plain"
	}
}

func (t lineTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *lineTag) UnmarshalText(text []byte) error {
	switch string(text) {
	case "plain", "":
		*t = tagPlain
	case "note":
		*t = tagNote
	case "caught":
		*t = tagCaught
	default:
		return errors.Errorf("unknown line tag %q", text)
	}
	return nil
}

type line struct {
	Tag  lineTag `json:"tag" yaml:"tag"`
	Text string  `json:"text" yaml:"text"`
}

// sectionWriter collects the output of one demo.
type sectionWriter struct {
	lines []line
}

func (w *sectionWriter) printf(format string, args ...any) {
	w.add(tagPlain, fmt.Sprintf(format, args...))
}

func (w *sectionWriter) println(args ...any) {
	w.add(tagPlain, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (w *sectionWriter) notef(format string, args ...any) {
	w.add(tagNote, fmt.Sprintf(format, args...))
}

func (w *sectionWriter) caughtf(format string, args ...any) {
	w.add(tagCaught, fmt.Sprintf(format, args...))
}

func (w *sectionWriter) add(tag lineTag, text string) {
	for _, l := range strings.Split(text, "\n") {
		w.lines = append(w.lines, line{Tag: tag, Text: l})
	}
}
