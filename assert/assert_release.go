//go:build release

package assert

func T(check bool, msg string, args ...any) {
}
