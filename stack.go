package main

import "github.com/pkg/errors"

var errEmptyStack = errors.New("stack is empty")

type stack[T any] struct {
	items []T
}

func (s *stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top item. The zero value returned with errEmptyStack is
// not an item.
func (s *stack[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, errEmptyStack
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, nil
}

func (s *stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, errEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

func (s *stack[T]) Len() int {
	return len(s.items)
}

func (s *stack[T]) Empty() bool {
	return len(s.items) == 0
}
