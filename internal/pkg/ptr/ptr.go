package ptr

// To returns a pointer to v. Mostly useful for building patch sets and test
// fixtures with literal values.
func To[T any](v T) *T {
	return &v
}
