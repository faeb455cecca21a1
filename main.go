package main

import "github/chapool/mobile-wallet/cmd"

func main() {
	cmd.Execute()
}
