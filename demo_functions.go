package main

import (
	"math"
	"strings"
)

func add(a, b int) int {
	return a + b
}

// multiply uses factor 2 when no factor is given.
func multiply(a int, factor ...int) int {
	b := 2
	if len(factor) > 0 {
		b = factor[0]
	}
	return a * b
}

func multiplyFloat(a, b float64) float64 {
	return a * b
}

func increment(x *int) {
	*x++
}

func divmod(a, b int) (q, r int) {
	q = a / b
	r = a % b
	return
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func demoFunctions(w *sectionWriter) {
	w.printf("add(5, 3): %d", add(5, 3))
	w.printf("multiply(4): %d", multiply(4))
	w.printf("multiply(3, 5): %d", multiply(3, 5))
	w.printf("multiplyFloat(2.5, 3.0): %g", multiplyFloat(2.5, 3.0))

	x := 10
	increment(&x)
	w.printf("After increment(&x): %d", x)

	q, r := divmod(17, 5)
	w.printf("divmod(17, 5): %d, %d", q, r)

	w.printf("printSlice: %s", joinInts([]int{1, 2, 3}))
}

func demoClosures(w *sectionWriter) {
	greet := func() string {
		return "Hello from closure!"
	}
	w.println(greet())

	sum := func(a, b int) int {
		return a + b
	}
	w.printf("sum(3, 4): %d", sum(3, 4))

	x := 10
	addX := func(x int) func(int) int {
		return func(y int) int { return x + y }
	}(x)
	x = 1000
	w.printf("addX(5): %d (x copied before it changed)", addX(5))

	count := 0
	inc := func() { count++ }
	inc()
	inc()
	w.printf("After 2 increments: %d", count)

	doubled := mapSlice([]int{1, 2, 3, 4, 5}, func(n int) int { return n * 2 })
	w.printf("Doubled: %s", joinInts(doubled))

	words := mapSlice([]int{1, 2, 3}, func(n int) string { return strings.Repeat("*", n) })
	w.printf("Stars: %s", strings.Join(words, " "))
}

type rectangle struct {
	width  float64
	height float64
}

func newRectangle(w, h float64) *rectangle {
	return &rectangle{width: w, height: h}
}

func (r *rectangle) Area() float64 {
	return r.width * r.height
}

func (r *rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

func (r *rectangle) SetWidth(w float64) {
	r.width = w
}

func (r *rectangle) SetHeight(h float64) {
	r.height = h
}

type point struct {
	X, Y float64
}

func (p point) DistanceFromOrigin() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

type shape interface {
	Area() float64
}

func demoStructs(w *sectionWriter) {
	rect := newRectangle(5, 3)
	w.println("rectangle(5, 3):")
	w.printf("  Area: %g", rect.Area())
	w.printf("  Perimeter: %g", rect.Perimeter())

	rect.SetWidth(10)
	w.println("After SetWidth(10):")
	w.printf("  Area: %g", rect.Area())

	p := point{X: 3, Y: 4}
	w.println("point{3, 4}:")
	w.printf("  Distance from origin: %g", p.DistanceFromOrigin())

	var s shape = rect
	w.printf("As shape interface, area: %g", s.Area())
}
