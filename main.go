package main

import (
	"github.com/EricDasha/mc-mod-compat-check/cmd"
)

func main() {
	cmd.Execute()
}
