// Command server runs the riwayat manuver HTTP API.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/manuver-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
