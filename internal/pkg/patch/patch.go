package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceAs converts a non-nil ptr with conv, otherwise returns fallback.
// Used for partial updates where the request carries raw strings for enum fields.
func CoalesceAs[S, T any](ptr *S, fallback T, conv func(S) T) T {
	if ptr != nil {
		return conv(*ptr)
	}
	return fallback
}
