package main

import "fmt"

// optional holds either a value or nothing. The zero optional is absent.
type optional[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, ok: true}
}

func none[T any]() optional[T] {
	return optional[T]{}
}

func (o optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o optional[T]) Present() bool {
	return o.ok
}

func (o optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

func (o optional[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprint(o.value)
}

func divideSafe(a, b int) optional[int] {
	if b == 0 {
		return none[int]()
	}
	return some(a / b)
}
