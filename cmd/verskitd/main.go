package main

import (
	"log"

	"github.com/s33d1ing/verskit/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
