package main

import (
	"vip8/cmd"
)

func main() {
	cmd.Execute()
}
