// Package main provides the optic CLI.
package main

import "github.com/mesh-intelligence/keypath/internal/cli"

func main() {
	cli.Execute()
}
