package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

var sectionHeader = lipgloss.NewStyle().
	Bold(true).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderBottom(true)

var titleHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("13"))

var footerColor = color.New(color.FgGreen, color.Bold)

var styles = map[lineTag]lipgloss.Style{
	tagPlain:  lipgloss.NewStyle(),
	tagNote:   lipgloss.NewStyle().Faint(true),
	tagCaught: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func parseColorMode(s string) (colorMode, error) {
	switch m := colorMode(strings.ToLower(s)); m {
	case colorAuto, colorAlways, colorNever:
		return m, nil
	case "":
		return colorAuto, nil
	default:
		return "", errors.Errorf("unknown color mode %q (expected auto, always, or never)", s)
	}
}

// apply sets the global color state and reports whether output is styled.
func (m colorMode) apply() bool {
	switch m {
	case colorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		color.NoColor = true
		return false
	case colorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		color.NoColor = false
		return true
	default:
		return lipgloss.ColorProfile() != termenv.Ascii
	}
}

// frame draws the underlined banner used when output is not styled.
func frame(title string) string {
	bar := strings.Repeat("=", runewidth.StringWidth(title))
	return fmt.Sprintf("%s\n%s\n%s", bar, title, bar)
}

type renderer struct {
	width  int
	styled bool
}

func (r renderer) header(title string) string {
	if r.styled {
		return sectionHeader.Render(title)
	}
	return frame(title)
}

func (r renderer) line(l line) string {
	text := l.Text
	if r.width > 0 {
		text = wordwrap.String(text, r.width)
	}
	if r.styled {
		return styles[l.Tag].Render(text)
	}
	return text
}

func (r renderer) section(s section) string {
	res := r.header(s.Name) + "\n"
	for _, l := range s.Lines {
		res += r.line(l) + "\n"
	}
	return res
}

func (r renderer) render(t transcript) string {
	var b strings.Builder
	if r.styled {
		b.WriteString(titleHeader.Render(t.Title))
		b.WriteString("\n")
	} else {
		b.WriteString(t.Title + "\n")
		b.WriteString(strings.Repeat("=", runewidth.StringWidth(t.Title)) + "\n")
	}
	for _, s := range t.Sections {
		b.WriteString("\n")
		b.WriteString(r.section(s))
	}
	if t.Footer != "" {
		footer := t.Footer
		if r.styled {
			footer = footerColor.Sprint(footer)
		}
		b.WriteString("\n" + footer + "\n")
	}
	return b.String()
}

// offsets returns the line number at which each section header starts in
// the output of render.
func (r renderer) offsets(t transcript) []int {
	var offsets []int
	n := lipgloss.Height(r.render(transcript{Title: t.Title}))
	for _, s := range t.Sections {
		offsets = append(offsets, n)
		n += lipgloss.Height(r.section(s))
	}
	return offsets
}
