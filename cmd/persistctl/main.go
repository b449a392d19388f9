/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/radioconsole/persist/cmd/persistctl/cmd"
)

func main() {
	cmd.Execute()
}
