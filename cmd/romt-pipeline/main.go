package main

import "github.com/drmikehenry/romt-pipeline/cmd/romt-pipeline/cmd"

func main() {
	cmd.Execute()
}
