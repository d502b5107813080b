package main

import "github.com/evening-academy/academy-management/cmd"

func main() {
	cmd.Execute()
}
