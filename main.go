package main

import (
	"log"

	"campus-events-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
