package database

import (
	"context"
	"fmt"
	"time"

	"skyline/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// demo customers share one password so the dataset is usable out of the box.
const demoPassword = "password123"

type seedFlight struct {
	number   string
	airline  string
	origin   string
	dest     string
	depDays  int
	depHours int
	durMin   int
	price    float64
	seats    int
	aircraft string
	ftype    string
}

var seedFlights = []seedFlight{
	{"AI101", "Air India", "Delhi (DEL)", "Mumbai (BOM)", 1, 8, 150, 5500, 45, "Boeing 737", "Domestic"},
	{"6E203", "IndiGo", "Mumbai (BOM)", "Bengaluru (BLR)", 2, 14, 120, 4200, 52, "Airbus A320", "Domestic"},
	{"SG305", "SpiceJet", "Bengaluru (BLR)", "Hyderabad (HYD)", 3, 11, 90, 3800, 38, "Boeing 737", "Domestic"},
	{"AI407", "Air India", "Hyderabad (HYD)", "Chennai (MAA)", 4, 9, 105, 4500, 41, "Airbus A320", "Domestic"},
	{"UK509", "Vistara", "Delhi (DEL)", "Kolkata (CCU)", 5, 7, 150, 6200, 48, "Airbus A321", "Domestic"},
	{"AI191", "Air India", "Delhi (DEL)", "Dubai (DXB)", 6, 22, 210, 18500, 28, "Boeing 787", "International"},
	{"EK512", "Emirates", "Mumbai (BOM)", "Dubai (DXB)", 7, 3, 210, 22000, 35, "Airbus A380", "International"},
	{"AI173", "Air India", "Delhi (DEL)", "Singapore (SIN)", 8, 23, 435, 28500, 24, "Boeing 777", "International"},
	{"SQ401", "Singapore Airlines", "Mumbai (BOM)", "Singapore (SIN)", 9, 2, 450, 32000, 30, "Airbus A350", "International"},
	{"AI131", "Air India", "Delhi (DEL)", "London (LHR)", 10, 14, 570, 65000, 22, "Boeing 787", "International"},
	{"BA256", "British Airways", "Mumbai (BOM)", "London (LHR)", 11, 2, 570, 72000, 26, "Boeing 787", "International"},
	{"AI127", "Air India", "Delhi (DEL)", "New York (JFK)", 12, 21, 990, 85000, 18, "Boeing 777", "International"},
}

var seedCustomers = []models.Customer{
	{CustomerID: 1, Name: "Aadhvik Kosireddy", Email: "aadhvik@email.com", Phone: "+91-98765-43210", PassportNumber: "M1234567", FrequentFlyerNumber: "FF789012", Nationality: "Indian", Status: "Active"},
	{CustomerID: 2, Name: "Priya Sharma", Email: "priya.sharma@email.com", Phone: "+91-98765-43211", PassportNumber: "M2345678", FrequentFlyerNumber: "FF890123", Nationality: "Indian", Status: "Active"},
	{CustomerID: 3, Name: "Rahul Verma", Email: "rahul.verma@email.com", Phone: "+91-98765-43212", PassportNumber: "M3456789", FrequentFlyerNumber: "FF901234", Nationality: "Indian", Status: "Active"},
	{CustomerID: 4, Name: "Ananya Reddy", Email: "ananya.reddy@email.com", Phone: "+91-98765-43213", PassportNumber: "M4567890", FrequentFlyerNumber: "FF012345", Nationality: "Indian", Status: "Active"},
	{CustomerID: 5, Name: "Vikram Singh", Email: "vikram.singh@email.com", Phone: "+91-98765-43214", PassportNumber: "M5678901", FrequentFlyerNumber: "FF123456", Nationality: "Indian", Status: "Active"},
}

// SeedDemoData loads the demo customers and flight schedule into an empty
// database. Existing data is left untouched.
func SeedDemoData() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := MongoClient.Database(DBName)
	flights := db.Collection("flights")
	customers := db.Collection("customers")

	count, err := flights.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: failed to count flights: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: failed to hash demo password: %w", err)
	}

	base := time.Now()
	const layout = "2006-01-02 15:04"

	var flightDocs []interface{}
	for i, f := range seedFlights {
		day := base.AddDate(0, 0, f.depDays)
		dep := time.Date(day.Year(), day.Month(), day.Day(), f.depHours, 0, 0, 0, day.Location())
		arr := dep.Add(time.Duration(f.durMin) * time.Minute)
		flightDocs = append(flightDocs, models.Flight{
			FlightID:       int64(i + 1),
			FlightNumber:   f.number,
			Airline:        f.airline,
			Origin:         f.origin,
			Destination:    f.dest,
			DepartureTime:  dep.Format(layout),
			ArrivalTime:    arr.Format(layout),
			Price:          f.price,
			AvailableSeats: f.seats,
			AircraftType:   f.aircraft,
			FlightType:     f.ftype,
		})
	}
	if _, err := flights.InsertMany(ctx, flightDocs); err != nil {
		return fmt.Errorf("seed: failed to insert flights: %w", err)
	}

	var customerDocs []interface{}
	for _, c := range seedCustomers {
		c.PasswordHash = string(hash)
		customerDocs = append(customerDocs, c)
	}
	if _, err := customers.InsertMany(ctx, customerDocs); err != nil {
		return fmt.Errorf("seed: failed to insert customers: %w", err)
	}

	return nil
}
