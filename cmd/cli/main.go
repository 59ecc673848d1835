package main

import "movie-review/cmd/cli/command"

func main() {
	command.Execute()
}
