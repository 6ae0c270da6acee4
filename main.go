package main

import (
	"log"

	"dailyreview/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("dailyreview: %v", err)
	}
}
