package main

import (
	"ArtLens/cmd"
)

func main() {
	cmd.Execute()
}
