package main

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
)

func maximum[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func demoGenerics(w *sectionWriter) {
	w.printf("maximum(5, 3): %d", maximum(5, 3))
	w.printf("maximum(3.7, 2.1): %g", maximum(3.7, 2.1))
	w.printf("maximum('z', 'a'): %c", maximum('z', 'a'))

	ints := stack[int]{}
	ints.Push(10)
	ints.Push(20)
	ints.Push(30)
	w.printf("Stack size: %d", ints.Len())
	for i := 0; i < 2; i++ {
		v, err := ints.Pop()
		if err != nil {
			w.caughtf("Pop failed: %v", err)
			continue
		}
		w.printf("Popping: %d", v)
	}
	w.printf("Stack size: %d", ints.Len())

	empty := stack[string]{}
	if _, err := empty.Pop(); errors.Is(err, errEmptyStack) {
		w.caughtf("Pop on empty stack: %v", err)
	}
}

func demoOwnership(w *sectionWriter) {
	p1 := makeUnique(42)
	w.printf("unique value: %d", p1.Get())

	p2 := p1.Move()
	w.printf("After move, p2: %d", p2.Get())
	if p1.Valid() {
		w.println("p1 is now: valid")
	} else {
		w.println("p1 is now: empty")
	}

	s1 := makeShared("Hello")
	s2 := s1.Clone()
	w.printf("shared use count: %d", s1.UseCount())
	w.printf("s1: %s, s2: %s", s1.Get(), s2.Get())

	s2.Release()
	w.printf("After release, use count: %d", s1.UseCount())
	w.notef("Go frees memory once nothing references it; the counts only model ownership.")
}

func demoOptional(w *sectionWriter) {
	result1 := divideSafe(10, 2)
	if v, ok := result1.Get(); ok {
		w.printf("10 / 2 = %d", v)
	}

	result2 := divideSafe(10, 0)
	if v, ok := result2.Get(); ok {
		w.printf("10 / 0 = %d", v)
	} else {
		w.println("10 / 0 = none (division by zero)")
	}

	w.printf("Result or default: %d", result2.OrElse(-1))
	w.printf("Zero is a present value: %v", divideSafe(0, 5).Present())
	w.printf("divideSafe(9, 3) = %v, divideSafe(1, 0) = %v", divideSafe(9, 3), divideSafe(1, 0))
}

// value is a closed set of kinds; only this file implements isValue.
type value interface {
	isValue()
	index() int
}

type intValue int
type floatValue float64
type stringValue string

func (intValue) isValue()    {}
func (floatValue) isValue()  {}
func (stringValue) isValue() {}

func (intValue) index() int    { return 0 }
func (floatValue) index() int  { return 1 }
func (stringValue) index() int { return 2 }

func visit(v value) string {
	switch v := v.(type) {
	case intValue:
		return fmt.Sprintf("int %d", int(v))
	case floatValue:
		return fmt.Sprintf("float64 %g", float64(v))
	case stringValue:
		return fmt.Sprintf("string %q", string(v))
	default:
		panic(fmt.Sprintf("unknown value kind %T", v))
	}
}

func demoVariants(w *sectionWriter) {
	var v value

	v = intValue(42)
	w.printf("Variant holds int: %d", v.(intValue))

	v = floatValue(3.14)
	w.printf("Variant holds float64: %g", v.(floatValue))

	v = stringValue("Hello")
	w.printf("Variant holds string: %s", v.(stringValue))

	w.printf("Index: %d (string is index 2)", v.index())

	if _, ok := v.(intValue); !ok {
		w.println("Variant does not hold an int")
	}

	for _, each := range []value{intValue(1), floatValue(2.5), stringValue("three")} {
		w.printf("Visiting: %s", visit(each))
	}
}
