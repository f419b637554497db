// Package main is the entry point of the pearlcfg tool.
// It converts device configuration responses into structured mappings and
// builds the query strings and admin URLs used to write them back.
package main

import "pearlcfg/cmd/pearlcfg/cmd"

func main() {
	cmd.Execute()
}
