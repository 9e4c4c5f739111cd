/*
Copyright © 2026 The nomen authors
*/
package main

import "github.com/mikrolab/nomen/cmd"

func main() {
	cmd.Execute()
}
