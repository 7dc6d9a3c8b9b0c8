package main

import "github.com/oshokin/worldclock/cmd/worldclock/cmd"

func main() {
	cmd.Execute()
}
