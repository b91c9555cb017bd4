package main

import "portfoliotracker/cmd"

func main() {
	cmd.Execute()
}
