package main

import (
	"context"
	"log"

	"github.com/orderstack/commerce-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("commerce API failed: %v", err)
	}
}
