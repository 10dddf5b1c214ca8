// Command c-template is shorthand for "cconv template".
package main

import (
	"github.com/tacogips/cconv/internal/cli"
)

func main() {
	cli.ExecuteAs("template")
}
