// Command projecthub serves the project hub API.
package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/app"
)

func main() {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "projecthub: startup failed: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "projecthub: %v\n", err)
		os.Exit(1)
	}
}
