// Command howtogen writes the usage guide of a generated SOAP client package.
package main

import (
	"fmt"
	"os"

	"howtogen/internal/errors"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
