// Command server runs the wadirect HTTP API.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/wadirect-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
