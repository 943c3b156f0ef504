package main

import "github.com/frahmantamala/hr-assistant/cmd"

func main() {
	cmd.Execute()
}
