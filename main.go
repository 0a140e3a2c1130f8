package main

import "github.com/iksnae/worktimer/cmd"

func main() {
	cmd.Execute()
}
