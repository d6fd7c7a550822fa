package main

import "site-preview/cmd"

func main() {
	cmd.Execute()
}
