package main

import (
	"campusflow/cmd"
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// make version a variable so the build system can inject it
var version = "unknown"

func main() {
	// a .env file is optional; flags fall back to real environment variables
	godotenv.Load()

	runCmd := cmd.ServerCli(version)
	if err := runCmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
