//go:build !unix

package main

import "os"

func terminalWidth(f *os.File) (int, bool) {
	return 0, false
}
