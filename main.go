package main

import "github.com/qyinm/emojitui/cli"

func main() {
	cli.Execute()
}
