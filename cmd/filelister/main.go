package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const versionString = "filelister 1.0.0"

func exitOnErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not load %s: %w", path, err)
	}
	return nil
}

func main() {
	exitOnErr(loadDotEnv(".env"))
	exitOnErr(newRootCommand().Execute())
}
