package main

// unique has at most one holder. Move hands the value over and leaves the
// source empty.
type unique[T any] struct {
	ptr *T
}

func makeUnique[T any](v T) unique[T] {
	return unique[T]{ptr: &v}
}

func (u *unique[T]) Move() unique[T] {
	moved := unique[T]{ptr: u.ptr}
	u.ptr = nil
	return moved
}

func (u unique[T]) Valid() bool {
	return u.ptr != nil
}

func (u unique[T]) Get() T {
	return *u.ptr
}

type sharedBox[T any] struct {
	value T
	refs  int
}

// shared is a counted handle. Every Clone must be paired with a Release.
type shared[T any] struct {
	box *sharedBox[T]
}

func makeShared[T any](v T) shared[T] {
	return shared[T]{box: &sharedBox[T]{value: v, refs: 1}}
}

func (s shared[T]) Clone() shared[T] {
	s.box.refs++
	return shared[T]{box: s.box}
}

func (s *shared[T]) Release() {
	if s.box == nil {
		return
	}
	s.box.refs--
	s.box = nil
}

func (s shared[T]) UseCount() int {
	if s.box == nil {
		return 0
	}
	return s.box.refs
}

func (s shared[T]) Get() T {
	return s.box.value
}
