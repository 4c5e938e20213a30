package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/technical-param/password-checker-web/commands"
)

func main() {
	parser := flags.NewParser(&commands.PassCheck, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
