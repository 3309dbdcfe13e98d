//go:build !mobile

// Package mobile is the ebitenmobile binding entry point. The real
// registration lives in mobile.go and only builds with -tags mobile.
package mobile

// Dummy is an exported no-op so the package can be referenced in normal
// builds.
func Dummy() {}
