package mvi

// Page is a loaded slice of a paginated collection together with the cursor
// of the page that follows it. An empty Next means the collection is
// exhausted.
type Page[T any] struct {
	Items []T
	Next  string
}

// HasNext reports whether another page can be requested.
func (p Page[T]) HasNext() bool {
	return p.Next != ""
}

// Len returns the number of loaded items.
func (p Page[T]) Len() int {
	return len(p.Items)
}

// Extend returns a page holding p's items merged with incoming's items and
// incoming's cursor.
func Extend[T any, K comparable](p, incoming Page[T], key func(T) K) Page[T] {
	return Page[T]{
		Items: Merge(p.Items, incoming.Items, key),
		Next:  incoming.Next,
	}
}

// Merge appends the items of incoming that are not already present in
// existing, keyed by key, keeping arrival order. Duplicates inside incoming
// are collapsed to their first occurrence. Neither input slice is modified.
func Merge[T any, K comparable](existing, incoming []T, key func(T) K) []T {
	out := make([]T, 0, len(existing)+len(incoming))
	out = append(out, existing...)

	seen := make(map[K]struct{}, len(existing)+len(incoming))
	for _, item := range existing {
		seen[key(item)] = struct{}{}
	}

	for _, item := range incoming {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}

	return out
}
