package main

import "github.com/frahmantamala/hrms-client/cmd"

func main() {
	cmd.Execute()
}
