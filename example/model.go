//go:build trackdef

package example

// UserSetting 用户界面设置
// @Track
type UserSetting struct {
	// 窗口标题
	Title  string
	Width  int
	Height int
	// @tracker.no_eq
	Items []string
	// @do_not_track
	cache   map[string]string
	counter int
}

// Pair 键值对
// @Track
type Pair[K comparable, V any] struct {
	Key K
	// @no_eq
	Val V
}
