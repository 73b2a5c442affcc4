package main

import "github.com/itsmostafa/llmstxt/cmd"

func main() {
	cmd.Execute()
}
