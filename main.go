package main

import "github.com/naufalhakm/rekap-perjadin/cmd"

func main() {
	cmd.Execute()
}
