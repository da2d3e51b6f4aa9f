package main

import "github.com/cerealize/cerealize-go/cmd/cereal/cmd"

func main() {
	cmd.Execute()
}
