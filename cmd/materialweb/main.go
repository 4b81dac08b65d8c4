// Command materialweb inspects pages and project configuration for the
// materialweb components.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/materialweb/cmd/materialweb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
