package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"orchids/database"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close(context.Background())

	err = database.Migrate(ctx, conn, func(name string) {
		log.Printf("✓ %s", name)
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nAll migrations completed!")
}
