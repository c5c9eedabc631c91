package main

import (
	"log"

	"github.com/boutiklabs/boutik/internal/server"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
