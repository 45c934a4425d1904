package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

const (
	tourTitle  = "Go Basics Demonstration"
	tourFooter = "Done! This covers core Go syntax and features."
)

type demo struct {
	Key  string
	Name string
	Run  func(w *sectionWriter)
}

var demos = []demo{
	{"types", "Types and Variables", demoTypes},
	{"pointers", "Pointers", demoPointers},
	{"strings", "Strings", demoStrings},
	{"control", "Control Flow", demoControlFlow},
	{"slices", "Slices", demoSlices},
	{"maps", "Maps", demoMaps},
	{"sets", "Sets", demoSets},
	{"functions", "Functions", demoFunctions},
	{"closures", "Closures", demoClosures},
	{"structs", "Structs and Methods", demoStructs},
	{"generics", "Generics", demoGenerics},
	{"ownership", "Ownership", demoOwnership},
	{"optional", "Optional Values", demoOptional},
	{"variants", "Variants", demoVariants},
	{"algorithms", "Algorithms", demoAlgorithms},
	{"errors", "Error Handling", demoErrors},
	{"enums", "Enumerations", demoEnums},
}

func demoKeys() []string {
	keys := make([]string, len(demos))
	for i, d := range demos {
		keys[i] = d.Key
	}
	return keys
}

// selectDemos returns the named demos in registry order. Names match a key
// or a section title, ignoring case. No names selects everything.
func selectDemos(names []string) ([]demo, error) {
	if len(names) == 0 {
		return demos, nil
	}
	wanted := make(map[int]bool)
	for _, name := range names {
		found := false
		for i, d := range demos {
			if strings.EqualFold(name, d.Key) || strings.EqualFold(name, d.Name) {
				wanted[i] = true
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown section %q (expected one of: %s)", name, strings.Join(demoKeys(), ", "))
		}
	}
	var selected []demo
	for i, d := range demos {
		if wanted[i] {
			selected = append(selected, d)
		}
	}
	return selected, nil
}

type tour struct {
	log logr.Logger
}

func (t tour) run(ctx context.Context, names []string) (transcript, error) {
	selected, err := selectDemos(names)
	if err != nil {
		return transcript{}, err
	}
	res := transcript{Title: tourTitle, Footer: tourFooter}
	for _, d := range selected {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrap(err, "tour interrupted")
		}
		t.log.V(1).Info("running section", "key", d.Key)
		sec, err := runDemo(d)
		if err != nil {
			return res, err
		}
		res.Sections = append(res.Sections, sec)
	}
	t.log.V(1).Info("tour finished", "sections", len(res.Sections))
	return res, nil
}

func runDemo(d demo) (sec section, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("section %q panicked: %v", d.Key, r)
		}
	}()
	w := &sectionWriter{}
	d.Run(w)
	return section{Key: d.Key, Name: d.Name, Lines: w.lines}, nil
}

func listDemos() string {
	var b strings.Builder
	for _, d := range demos {
		fmt.Fprintf(&b, "%-12s %s\n", d.Key, d.Name)
	}
	return b.String()
}
