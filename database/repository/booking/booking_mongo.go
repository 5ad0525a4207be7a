package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"skyline/database"
	"skyline/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	paymentColl *mongo.Collection
	flightColl  *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		paymentColl: db.Collection("payments"),
		flightColl:  db.Collection("flights"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}

	_, err := r.bookingColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Commit(in CommitInput) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	db := r.bookingColl.Database()
	client := db.Client()
	sess, err := client.StartSession()
	if err != nil {
		return 0, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var bookingID int64
	today := time.Now().Format("2006-01-02")

	txnFn := func(sc mongo.SessionContext) error {
		id, err := database.NextSequence(sc, db, "bookings")
		if err != nil {
			return err
		}

		booking := models.Booking{
			BookingID:     id,
			CustomerID:    in.CustomerID,
			FlightID:      in.FlightID,
			BookingDate:   today,
			SeatNumber:    in.Seat,
			BookingStatus: "Confirmed",
			TotalPrice:    in.Price,
			PNR:           in.PNR,
		}
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		// Guarded decrement: the filter refuses flights that are sold out,
		// so available_seats never drops below zero.
		res, err := r.flightColl.UpdateOne(sc,
			bson.M{"flight_id": in.FlightID, "available_seats": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"available_seats": -1}},
		)
		if err != nil {
			return fmt.Errorf("seat decrement failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("no seats left on flight %d", in.FlightID)
		}

		payID, err := database.NextSequence(sc, db, "payments")
		if err != nil {
			return err
		}
		payment := models.Payment{
			PaymentID:     payID,
			BookingID:     id,
			Amount:        in.Price,
			PaymentMethod: in.PaymentMethod,
			PaymentDate:   today,
			PaymentStatus: "Completed",
		}
		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}

		bookingID = id
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return 0, fmt.Errorf("booking transaction failed: %w", err)
	}

	return bookingID, nil
}

// detailPipeline joins bookings with their flight document.
func detailPipeline(match bson.M, sortDesc bool, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "flights",
			"localField":   "flight_id",
			"foreignField": "flight_id",
			"as":           "flight",
		}}},
		bson.D{{Key: "$unwind", Value: "$flight"}},
	}
	if sortDesc {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"flight.departure_time": -1}}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	return pipeline
}

func (r *MongoBookingRepo) aggregateDetails(pipeline mongo.Pipeline) ([]models.BookingDetail, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cur, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("booking lookup failed: %w", err)
	}
	defer cur.Close(ctx)

	var details []models.BookingDetail
	if err := cur.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return details, nil
}

func (r *MongoBookingRepo) GetByID(bookingID, customerID int64) (*models.BookingDetail, error) {
	details, err := r.aggregateDetails(detailPipeline(
		bson.M{"booking_id": bookingID, "customer_id": customerID}, false, 1))
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (r *MongoBookingRepo) ListByCustomer(customerID int64) ([]models.BookingDetail, error) {
	return r.aggregateDetails(detailPipeline(bson.M{"customer_id": customerID}, true, 0))
}

func (r *MongoBookingRepo) LatestByCustomer(customerID int64) (*models.BookingDetail, error) {
	match := bson.M{
		"customer_id":    customerID,
		"booking_status": bson.M{"$in": bson.A{"Confirmed", "Completed"}},
	}
	details, err := r.aggregateDetails(detailPipeline(match, true, 1))
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}
