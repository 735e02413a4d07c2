package main

import "github.com/philipp01105/filelog/internal/cmd"

func main() {
	cmd.Execute()
}
