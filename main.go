package main

import (
	"github.com/thetestlabs/detect-commented-terraform/cmd"
)

func main() {
	cmd.Execute()
}
