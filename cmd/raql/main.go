// Command raql translates relational algebra to SQL and LaTeX.
package main

import (
	"os"

	"github.com/raql-dev/raql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
