package main

import (
	"context"
	"fmt"
	"os"

	"login_challenges/presentation/runner"
)

func main() {
	suiteRunner, err := runner.NewRunner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := suiteRunner.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
