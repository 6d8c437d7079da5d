// Package main is the entry point for the jacov CLI.
package main

import "jacov.dev/pkg/jacov/cmd"

func main() {
	cmd.Execute()
}
