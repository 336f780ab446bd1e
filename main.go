// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"yulc/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the yulc REPL, %s!\n", currentUser.Username)
	fmt.Println("Type a function (or a whole { } block) to see its wasm translation.")
	repl.Start(os.Stdin, os.Stdout)
}
