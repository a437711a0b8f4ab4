package main

import (
	"os"

	"github.com/jrazmi/todoview/app/todoview/commands"
)

var build = "develop"

func main() {
	if err := commands.Execute(build); err != nil {
		os.Exit(1)
	}
}
