// Package main is the entry point for the gophsocial CLI application,
// a terminal client for the gophsocial social-posting API.
package main

import (
	"gophsocial/cli/cmd"
)

func main() {
	cmd.Execute()
}
