package main

import "github.com/Thorn95/fastqstats/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
