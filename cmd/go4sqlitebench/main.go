package main

import (
	"context"
	"log"

	"github.com/go4sqlite/go4sqlite/internal/bench"
)

func main() {
	if err := bench.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
