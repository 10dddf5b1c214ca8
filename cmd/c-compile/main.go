// Command c-compile is shorthand for "cconv compile".
package main

import (
	"github.com/tacogips/cconv/internal/cli"
)

func main() {
	cli.ExecuteAs("compile")
}
