package main

import "github.com/saulberardo/MagicEDA/cmd"

func main() {
	cmd.Execute()
}
