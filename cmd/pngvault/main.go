/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/averett/pngvault/cmd/pngvault/cmd"
)

func main() {
	cmd.Execute()
}
