package main

import (
	"github.com/dogechain-lab/blockenv/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
