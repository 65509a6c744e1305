package main

import (
	"os"

	"cireport/internal/cli"
)

// ci-report is run by CI after an integration test suite finishes:
//
//	ci-report --build_id 1234 --verdict success lte --url https://ci.example.com/report
//
// It prints the invocation and the generated redirect page, then publishes
// both to the Realtime Database. Any failure exits 1.
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
