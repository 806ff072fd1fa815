package main

import "registration-manager/cmd"

func main() {
	cmd.Execute()
}
