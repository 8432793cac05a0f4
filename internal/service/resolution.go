package service

// Resolution is the outcome of resolving a scanned code: either a known
// value or the normalised code of something not registered yet.
type Resolution[T any] struct {
	Known bool
	Value T

	// Code is the normalised scanned code in both cases.
	Code string
}

func known[T any](code string, value T) Resolution[T] {
	return Resolution[T]{Known: true, Value: value, Code: code}
}

func unknown[T any](code string) Resolution[T] {
	return Resolution[T]{Code: code}
}
