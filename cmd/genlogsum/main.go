package main

import (
	"github.com/livp123/genlogsum/cmd/genlogsum/commands"
)

func main() {
	commands.Execute()
}
