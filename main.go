package main

import "storage-gateway/cmd"

func main() {
	cmd.Execute()
}
