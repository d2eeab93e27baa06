package main

import "github.com/theirongolddev/kapital/cmd"

func main() {
	cmd.Execute()
}
