// Command notes manages a vault of markdown notes from the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

// fatal prints "<msg>: <err>" to stderr and exits with status 1.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
