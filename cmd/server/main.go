package main

import (
	"log"

	"crypto-arcade/internal/app"
)

func main() {
	server, err := app.NewServer()
	if err != nil {
		log.Fatal(err)
	}
	log.Fatal(server.Start())
}
