// Package main provides the makery CLI.
package main

import "github.com/mesh-intelligence/makery/internal/cli"

func main() {
	cli.Execute()
}
