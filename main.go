package main

import "order-items/cmd"

func main() {
	cmd.Execute()
}
