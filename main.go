package main

import (
	"os"

	"github.com/MarcGrol/mobilpaybundle/commands"
	"github.com/MarcGrol/mobilpaybundle/lib/myuuid"
)

func main() {
	err := commands.NewRootCommand(myuuid.RealUUIDer{}).Execute()
	if err != nil {
		os.Exit(1)
	}
}
