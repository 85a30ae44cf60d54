package main

import (
	"os"

	"fortio.org/colorwheel/colorpick/cli"
)

func main() {
	os.Exit(cli.Main())
}
