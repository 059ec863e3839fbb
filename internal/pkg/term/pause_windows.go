//go:build windows

package term

const pauseOnExit = true
