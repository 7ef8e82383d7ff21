package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	EntriesCollection *mongo.Collection
	Client            *mongo.Client
)

// Connect opens the MongoDB connection when MONGODB_URI is set. The catalog
// falls back to the embedded seed when no URI is configured or the dial
// fails, so this never aborts startup.
func Connect() bool {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		return false
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("MongoDB unreachable: %v", err)
		return false
	}

	Client = client
	EntriesCollection = client.Database("tripnest").Collection("entries")
	return true
}
