package flightRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"skyline/database"
	"skyline/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRepo implements FlightRepository using MongoDB.
type MongoFlightRepo struct {
	coll *mongo.Collection
}

// NewMongoFlightRepo creates a new instance of FlightRepository using MongoDB.
func NewMongoFlightRepo() FlightRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("flights")
	repo := &MongoFlightRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFlightRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "flight_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "flight_number", Value: 1}}},
		{Keys: bson.D{{Key: "departure_time", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// containsPattern builds a case-insensitive substring regex for a user token.
func containsPattern(token string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(token), Options: "i"}
}

func (r *MongoFlightRepo) Search(originToken, destinationToken, date string) ([]models.Flight, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"available_seats": bson.M{"$gt": 0},
		"origin":          containsPattern(originToken),
		"destination":     containsPattern(destinationToken),
		// departure_time uses the "2006-01-02 15:04" layout, so a prefix
		// match on the first 10 characters is an exact-day match.
		"departure_time": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(date)},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "departure_time", Value: 1}}).
		SetLimit(5)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	defer cur.Close(ctx)

	var flights []models.Flight
	if err := cur.All(ctx, &flights); err != nil {
		return nil, fmt.Errorf("failed to decode flights: %w", err)
	}
	return flights, nil
}

func (r *MongoFlightRepo) GetByNumber(flightNumber string) (*models.Flight, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"flight_number": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(flightNumber) + "$", Options: "i"},
	}

	var flight models.Flight
	err := r.coll.FindOne(ctx, filter).Decode(&flight)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight %s: %w", flightNumber, err)
	}
	return &flight, nil
}
