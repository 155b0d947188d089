package main

import (
	"github.com/notargets/gomesh/cmd"
)

func main() {
	cmd.Execute()
}
