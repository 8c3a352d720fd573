package main

import "github.com/ucall-rpc/ucall-go/cmd"

func main() {
	cmd.Execute()
}
