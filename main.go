// SPDX-License-Identifier: MPL-2.0

// Command wslenv lists the Python environments discovered inside WSL
// distributions.
package main

import cmd "github.com/invowk/wslenv/cmd/wslenv"

func main() {
	cmd.Execute()
}
