package mongodb

import (
	"context"
	"log"
	"reflect"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"college_backend/app/codec"
	"college_backend/config"
)

var Client *mongo.Client

// Connect initialises the shared MongoDB client from MONGO_URI, wiring the
// UUID codec so lecturer ids are stored as native binary uuids.
func Connect() {
	mongoURI := config.GetEnv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set")
	}

	registry := bson.NewRegistry()
	uuidType := reflect.TypeOf(uuid.UUID{})
	registry.RegisterTypeEncoder(uuidType, &codec.UUIDCodec{})
	registry.RegisterTypeDecoder(uuidType, &codec.UUIDCodec{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI).SetRegistry(registry))
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}

	if err = Client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB ping failed:", err)
	}

	log.Println("mongodb connected")
}

// GetCollection returns a collection handle on the connected client.
func GetCollection(dbName, collName string) *mongo.Collection {
	return Client.Database(dbName).Collection(collName)
}

// EnsureLecturerIndexes creates the unique email index the store relies on
// for write-time uniqueness. Safe to call on every start.
func EnsureLecturerIndexes(coll *mongo.Collection) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("failed to create email index:", err)
	}
}
