// Command bridgectl manages the credentials of a go-issue-bridge
// installation and talks to a running bridge.
//
//	bridgectl keys add laptop
//	bridgectl keys list
//	bridgectl health --address http://127.0.0.1:8090 --token ...
//	bridgectl watch --min-severity high
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultEnv()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		os.Exit(1)
	}
}
