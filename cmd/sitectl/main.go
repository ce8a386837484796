package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/supernalintelligence/interface-docs-sub001/internal/cmd"
)

func main() {
	_ = godotenv.Load(".env")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
