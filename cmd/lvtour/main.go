// SPDX-License-Identifier: MIT

// Command lvtour computes the round-trip transport cost of a directed
// network of collection points, from the command line or over HTTP.
//
//	lvtour solve --points 3 --routes 4 --file routes.txt
//	lvtour solve --network depot.hcl --var toll=2.5 --output json
//	lvtour serve --addr :8080
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
