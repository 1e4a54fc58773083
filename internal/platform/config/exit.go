package config

import (
	"fmt"
	"os"
)

// Exitf writes "Error: <message>" to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
