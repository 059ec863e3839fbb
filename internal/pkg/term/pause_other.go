//go:build !windows

package term

const pauseOnExit = false
