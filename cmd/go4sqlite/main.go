package main

import (
	"context"
	"log"

	"github.com/go4sqlite/go4sqlite/internal/shell"
)

func main() {
	if err := shell.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
