package generic

// Pair 泛型键值对
type Pair[K comparable, V any] struct {
	Key    K
	Value  V
	Extras []V
}
