// Package patch holds helpers for partial updates, where a nil pointer means
// "leave the field as it is".
package patch

// Coalesce returns *ptr, or fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Or returns override when it is set, otherwise current. Unlike Coalesce the
// result stays a pointer, so an optional field can remain unset.
func Or[T any](override, current *T) *T {
	if override != nil {
		return override
	}
	return current
}
