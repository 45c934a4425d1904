package main

import (
	"slices"

	"github.com/pkg/errors"
)

func demoAlgorithms(w *sectionWriter) {
	nums := []int{5, 2, 8, 1, 9, 3}

	slices.Sort(nums)
	w.printf("Sorted: %s", joinInts(nums))

	if pos := slices.Index(nums, 8); pos >= 0 {
		w.printf("Found 8 at position: %d", pos)
	}
	if pos, found := slices.BinarySearch(nums, 4); !found {
		w.printf("4 would be inserted at: %d", pos)
	}

	data := []int{1, 2, 2, 3, 2, 4}
	count := 0
	for _, n := range data {
		if n == 2 {
			count++
		}
	}
	w.printf("Count of 2: %d", count)

	sum := 0
	for _, n := range nums {
		sum += n
	}
	w.printf("Sum: %d", sum)

	w.printf("Min: %d", slices.Min(nums))
	w.printf("Max: %d", slices.Max(nums))

	allPositive := !slices.ContainsFunc(nums, func(n int) bool { return n <= 0 })
	w.printf("All positive: %t", allPositive)
	w.printf("Contains 9: %t", slices.Contains(nums, 9))

	reversed := slices.Clone(nums)
	slices.Reverse(reversed)
	w.printf("Reversed: %s", joinInts(reversed))
}

func demoErrors(w *sectionWriter) {
	vec := []int{1, 2, 3}

	if v, err := at(vec, 1); err == nil {
		w.printf("at(vec, 1): %d", v)
	}

	_, err := at(vec, 10)
	var ie *indexError
	switch {
	case errors.As(err, &ie):
		w.caughtf("Caught error: %v", err)
		w.printf("Requested %d, length %d", ie.Index, ie.Len)
	case err != nil:
		w.caughtf("Caught unknown error: %v", err)
	}
	if errors.Is(err, errIndexOutOfRange) {
		w.println("errors.Is(err, errIndexOutOfRange): true")
	}

	i := 10
	err = recoverIndex(func() {
		_ = vec[i]
	})
	if err != nil {
		w.caughtf("Recovered panic: %v", err)
	}

	wrapped := errors.Wrap(err, "reading vec")
	w.printf("Wrapped: %v", wrapped)
	w.printf("Still out of range: %t", errors.Is(wrapped, errIndexOutOfRange))

	w.println("Execution continues after error")
}

type shade int

const (
	red shade = iota
	green
	blue
)

func (c shade) String() string {
	switch c {
	case red:
		return "red"
	case green:
		return "green"
	case blue:
		return "blue"
	default:
		return "shade(" + itoa(int(c)) + ")"
	}
}

type status uint8

const (
	statusSuccess status = iota + 1
	statusError
	statusPending
)

func (s status) String() string {
	switch s {
	case statusSuccess:
		return "success"
	case statusError:
		return "error"
	case statusPending:
		return "pending"
	default:
		return "unknown"
	}
}

func demoEnums(w *sectionWriter) {
	c := red
	w.printf("Shade value: %d", int(c))
	w.printf("Shade name: %s", c)
	w.printf("Out of range shade: %s", shade(7))

	s := statusSuccess
	if s == statusSuccess {
		w.println("Operation successful")
	}
	var unset status
	w.printf("Zero status: %s", unset)
}
