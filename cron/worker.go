package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"skyline/config"
	bookingRepo "skyline/database/repository/booking"
	customerRepo "skyline/database/repository/customer"
	"skyline/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeItinerarySend = "itinerary:send"

// InitItineraryWorker runs the async worker in background. It drains the
// itinerary queue: for every confirmed booking it assembles the itinerary
// and hands it to the delivery log.
func InitItineraryWorker(bookings bookingRepo.BookingRepository, customers customerRepo.CustomerRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeItinerarySend, handleItineraryTask(bookings, customers))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ItineraryWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ItineraryWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ItineraryWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleItineraryTask(bookings bookingRepo.BookingRepository, customers customerRepo.CustomerRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ItineraryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ItineraryHandler] Invalid payload: %v", err)
			return err
		}

		detail, err := bookings.GetByID(p.BookingID, p.CustomerID)
		if err != nil {
			log.Printf("[ItineraryHandler] Booking lookup failed for %d: %v", p.BookingID, err)
			return err
		}
		if detail == nil {
			// Booking vanished; nothing to deliver and nothing to retry.
			log.Printf("[ItineraryHandler] Booking %d not found, dropping task", p.BookingID)
			return nil
		}

		cust, err := customers.GetByID(p.CustomerID)
		if err != nil {
			log.Printf("[ItineraryHandler] Customer lookup failed for %d: %v", p.CustomerID, err)
			return err
		}
		if cust == nil {
			log.Printf("[ItineraryHandler] Customer %d not found, dropping task", p.CustomerID)
			return nil
		}

		log.Printf("[ItineraryHandler] Itinerary for %s <%s>: booking #%d PNR %s, %s %s %s -> %s dep %s seat %s",
			cust.Name, cust.Email, detail.BookingID, detail.PNR,
			detail.Flight.Airline, detail.Flight.FlightNumber,
			detail.Flight.Origin, detail.Flight.Destination,
			detail.Flight.DepartureTime, detail.SeatNumber)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ItineraryWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
