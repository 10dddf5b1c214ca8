// Command c-run is shorthand for "cconv run".
package main

import (
	"github.com/tacogips/cconv/internal/cli"
)

func main() {
	cli.ExecuteAs("run")
}
