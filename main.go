package main

import "tvgu-data-hub/cmd"

func main() {
	cmd.Execute()
}
