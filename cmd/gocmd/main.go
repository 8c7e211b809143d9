// Command gocmd runs a command or shell script and reports its exit code,
// output lines and error lines.
package main

import (
	"context"
	"os"

	"github.com/kbukum/gocmd/cmd/gocmd/app"
)

func main() {
	os.Exit(app.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
