// SPDX-License-Identifier: MIT

// Command turnpath solves turn-penalised grid mazes.
//
//	turnpath solve maze.txt --facing east --render
//	turnpath solve maze.txt --all --config turnpath.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
