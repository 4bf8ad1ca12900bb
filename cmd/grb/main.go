// Package main provides the grb CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("grb %s\n", version)
		return
	}

	fmt.Println("grb - Sparse Linear Algebra over Semirings for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/ for shortest-path and BFS walkthroughs.")
}
