package main

import "github.com/project-lint/project-lint/cmd"

func main() {
	cmd.Execute()
}
