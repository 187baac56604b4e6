// metastr packs, unpacks and surveys identifier strings.
package main

import (
	"os"

	"github.com/violetpay-org/metastring/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
