package main

import "testsrv/cmd"

func main() {
	cmd.Execute()
}
