package main

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func demoTypes(w *sectionWriter) {
	var i int = 42
	var d float64 = 3.14159
	var b bool = true
	var c rune = 'A'

	w.printf("int: %d", i)
	w.printf("float64: %g", d)
	w.printf("bool: %t", b)
	w.printf("rune: %c (%d)", c, c)

	// inferred
	x := 10
	y := 3.14
	s := "hello"
	w.printf("x := %v (%T)", x, x)
	w.printf("y := %v (%T)", y, y)
	w.printf("s := %v (%T)", s, s)

	const maxSize = 100
	const typed int64 = 50
	w.printf("const: %d", maxSize)
	w.printf("typed const: %d (%T)", typed, typed)

	var zero struct {
		n int
		s string
		p *int
	}
	w.printf("zero values: %d %q %v", zero.n, zero.s, zero.p)
}

func demoPointers(w *sectionWriter) {
	value := 42

	ptr := &value
	*ptr = 100
	w.printf("After *ptr=100, value: %d", value)
	w.printf("Pointer value: %d", *ptr)
	w.notef("Pointer address: %p", ptr)

	increment := func(p *int) { *p++ }
	increment(&value)
	w.printf("After increment(&value), value: %d", value)

	var nilPtr *int
	w.printf("nil pointer: %v", nilPtr)
	w.printf("nilPtr == nil: %t", nilPtr == nil)
}

func demoStrings(w *sectionWriter) {
	s1 := "Hello"
	s2 := "World"

	s3 := s1 + " " + s2
	w.printf("Concatenated: %s", s3)
	w.printf("Length: %d", len(s3))
	w.printf("Substring [0,5): %s", s3[0:5])
	w.printf("Position of 'World': %d", strings.Index(s3, "World"))
	w.printf("Position of 'Moon': %d", strings.Index(s3, "Moon"))

	raw := `Can have "quotes" and \backslashes`
	w.printf("Raw string: %s", raw)

	accented := "héllo"
	w.printf("len(%q) = %d bytes, %d runes", accented, len(accented), utf8.RuneCountInString(accented))

	w.printf("Upper: %s", cases.Upper(language.English).String(s3))
	w.printf("Title: %s", cases.Title(language.English).String("go basics tour"))

	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteString(s1[:i+1])
		sb.WriteByte(' ')
	}
	w.printf("Builder: %s", strings.TrimSpace(sb.String()))
}

func demoControlFlow(w *sectionWriter) {
	x := 10
	if x > 5 {
		w.println("x > 5")
	} else if x > 0 {
		w.println("x > 0")
	} else {
		w.println("x <= 0")
	}

	// Go has no conditional operator.
	result := "odd"
	if x%2 == 0 {
		result = "even"
	}
	w.printf("%d is %s", x, result)

	day := 3
	switch day {
	case 1:
		w.println("Monday")
	case 2:
		w.println("Tuesday")
	case 3:
		w.println("Wednesday")
	default:
		w.println("Other day")
	}

	switch {
	case x > 100:
		w.println("x is large")
	case x > 5:
		w.println("x is medium")
		fallthrough
	default:
		w.println("fallthrough reached default")
	}

	var loop []string
	for i := 0; i < 5; i++ {
		loop = append(loop, itoa(i))
	}
	w.printf("For loop: %s", strings.Join(loop, " "))

	nums := []int{1, 2, 3, 4, 5}
	w.printf("Range: %s", joinInts(nums))

	count := 0
	var while []string
	for count < 3 {
		while = append(while, itoa(count))
		count++
	}
	w.printf("While: %s", strings.Join(while, " "))
}
