//go:build !linux && !windows

package osname

func Name() string { return "other" }
