package main

import (
	"os"

	"github.com/Samal2005/sound-chat/cmd/soundchat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
