// File: services/assistant/responders.go
package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	bookingRepo "skyline/database/repository/booking"
	customerRepo "skyline/database/repository/customer"
	flightRepo "skyline/database/repository/flight"
	"skyline/models"
	"skyline/utils"

	"go.uber.org/zap"
)

const (
	msgLoginForBookings = "You must be logged in to check bookings."
	msgLoginForProfile  = "You must be logged in to view your information."
	msgLookupError      = "Sorry, I couldn't look that up just now. Please try again."
)

var (
	reFlightNumber = regexp.MustCompile(`[A-Z]{2}\d+`)
	reBookingID    = regexp.MustCompile(`\b(\d+)\b`)
)

// Responders covers every tool that answers in a single turn: greetings,
// policy questions, complaints, booking lookups, flight details and profile
// queries. The multi-turn flows live in SearchFlow and BookingFlow.
type Responders struct {
	Flights   flightRepo.FlightRepository
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
}

// Greeting answers small talk.
func (r *Responders) Greeting() string {
	return "Namaste! Welcome to SkyLine Airways.\n\n" +
		"How can I assist you today?\n\n" +
		"I can help you with:\n" +
		"- Search and book flights\n" +
		"- Check your bookings and travel history\n" +
		"- View your profile and account details\n" +
		"- Get flight information\n" +
		"- Manage your reservations\n" +
		"- Answer questions about our services"
}

// ManageBooking lists the modification options; actual changes go through
// support.
func (r *Responders) ManageBooking() string {
	return "Booking Management Options:\n\n" +
		"I can help you with:\n" +
		"- Cancel your booking\n" +
		"- Change your seat\n" +
		"- Modify travel dates\n" +
		"- Add extra baggage\n" +
		"- Special meal requests\n\n" +
		"Please let me know your booking ID and what you'd like to change!"
}

// Complaint acknowledges and hands back a stable reference number.
func (r *Responders) Complaint(text string) string {
	return "Complaint Registered\n\n" +
		"Thank you for bringing this to our attention.\n" +
		"Your complaint has been logged and our customer service team will review it.\n" +
		"You should receive a response within 24-48 hours.\n\n" +
		"Reference: " + ComplaintReference(text)
}

// Policy answers general airline questions from a static knowledge table.
// First matching topic wins; anything unrecognized gets the capability menu.
func (r *Responders) Policy(query string) string {
	q := strings.ToLower(query)

	if containsAny(q, []string{"baggage", "luggage", "bag", "carry", "check-in", "weight", "kg"}) {
		return "SkyLine Airways Baggage Policy\n\n" +
			"Domestic flights:\n" +
			"- Carry-on: 1 bag (max 10 kg, 55x40x20 cm)\n" +
			"- Checked baggage: 1 bag (max 23 kg)\n" +
			"- Extra baggage: Rs.500 per kg\n\n" +
			"International flights:\n" +
			"- Carry-on: 1 bag (max 10 kg)\n" +
			"- Checked baggage: 2 bags (max 32 kg each)\n" +
			"- Extra baggage: Rs.800 per kg\n\n" +
			"Prohibited items: flammables, sharp objects, liquids over 100ml in carry-on.\n\n" +
			"Need help with anything else?"
	}
	if containsAny(q, []string{"check-in", "checkin", "web check", "online check", "airport check"}) {
		return "Check-in Information\n\n" +
			"Online/web check-in:\n" +
			"- Opens 48 hours before departure, closes 2 hours before\n" +
			"- Boarding pass delivered by email or app\n\n" +
			"Airport check-in:\n" +
			"- Domestic: counter opens 3 hours before, closes 45 mins before\n" +
			"- International: counter opens 4 hours before, closes 1 hour before\n\n" +
			"Self-service kiosks are available at major airports.\n\n" +
			"Would you like help with anything else?"
	}
	if containsAny(q, []string{"cancel", "refund", "cancellation", "money back"}) {
		return "Cancellation & Refund Policy\n\n" +
			"Free cancellation within 24 hours of booking: full refund.\n\n" +
			"Standard cancellation fees:\n" +
			"- More than 7 days before: 10% fee\n" +
			"- 3-7 days before: 25% fee\n" +
			"- 24-72 hours before: 50% fee\n" +
			"- Less than 24 hours: no refund (credit only)\n\n" +
			"Refund processing: cards 5-7 business days, UPI/net banking 3-5 business days.\n\n" +
			"To cancel a booking, say 'cancel my booking' or provide your PNR."
	}
	if containsAny(q, []string{"meal", "food", "vegetarian", "veg", "non-veg", "eat", "dinner", "lunch", "breakfast"}) {
		return "In-Flight Meals\n\n" +
			"Complimentary meals:\n" +
			"- Domestic flights over 2 hours: light snacks\n" +
			"- International flights: full meal service\n\n" +
			"Special meals (pre-order 24 hours before): vegetarian (Hindu/Jain),\n" +
			"non-vegetarian, vegan, diabetic-friendly, child meals, kosher/halal.\n\n" +
			"Snacks and beverages are available for purchase on domestic flights.\n\n" +
			"Would you like to pre-order a special meal?"
	}
	if containsAny(q, []string{"seat", "window", "aisle", "legroom", "extra leg"}) {
		return "Seat Selection\n\n" +
			"Free seats: standard middle seats.\n" +
			"Preferred seats (Rs.300-500): window, aisle, front rows.\n" +
			"Extra legroom (Rs.800-1500): exit row and bulkhead seats.\n" +
			"Business class: premium seats with extra recline.\n\n" +
			"To select a seat, say 'I want seat 12A' during booking."
	}
	if containsAny(q, []string{"wifi", "internet", "entertainment", "movie", "music"}) {
		return "In-Flight Entertainment & WiFi\n\n" +
			"WiFi on international flights:\n" +
			"- Complimentary messaging\n" +
			"- Browse package: Rs.500 per flight\n" +
			"- Streaming package: Rs.1000 per flight\n\n" +
			"Seatback entertainment on Boeing 787 and Airbus A380: movies, TV,\n" +
			"music, games, and a kids section.\n\n" +
			"On domestic flights, stream to your device via onboard WiFi for free."
	}
	if containsAny(q, []string{"visa", "passport", "document", "id proof", "identity"}) {
		return "Travel Documents Required\n\n" +
			"Domestic flights: valid photo ID (Aadhaar, PAN, Passport, Driving License, Voter ID).\n\n" +
			"International flights:\n" +
			"- Valid passport (6+ months validity)\n" +
			"- Valid visa for the destination country\n" +
			"- Return ticket proof (some countries)\n\n" +
			"Carry original documents; the name must match the booking exactly.\n\n" +
			"Need visa information for a specific country? Just ask!"
	}
	if containsAny(q, []string{"delay", "late", "compensation", "waiting"}) {
		return "Flight Delay Compensation\n\n" +
			"- Delay under 2 hours: refreshments provided\n" +
			"- Delay 2-4 hours: meal vouchers\n" +
			"- Delay over 4 hours: hotel accommodation if required\n" +
			"- Delay over 6 hours: option to cancel with full refund\n\n" +
			"If the airline cancels: full refund, or free rebooking on the next\n" +
			"available flight plus a Rs.5000 travel voucher.\n\n" +
			"Check flight status by saying 'status of flight AI101'."
	}
	if containsAny(q, []string{"pet", "dog", "cat", "animal"}) {
		return "Pet Travel Policy\n\n" +
			"In-cabin (small pets under 7 kg):\n" +
			"- Carrier must fit under the seat\n" +
			"- Book 48 hours in advance\n" +
			"- Fee: Rs.3000 domestic, Rs.8000 international\n\n" +
			"Cargo hold (larger pets): IATA-approved crate and a vet health\n" +
			"certificate required; fee based on weight.\n\n" +
			"Not allowed: snub-nosed breeds and aggressive animals.\n\n" +
			"Contact us 48 hours before travel to arrange pet carriage."
	}
	if containsAny(q, []string{"infant", "baby", "child", "kid", "minor", "unaccompanied"}) {
		return "Traveling with Children\n\n" +
			"Infants (0-2 years): lap travel at 10% of adult fare; bassinets on\n" +
			"long flights (pre-book); baby food and formula carried freely.\n\n" +
			"Children (2-12 years): own seat at 75% of adult fare; kids meals available.\n\n" +
			"Unaccompanied minors (5-12 years): Rs.2500 service fee, staff escort\n" +
			"throughout, guardian forms completed at the airport.\n\n" +
			"Need to book for a child? Just tell me the travel details!"
	}
	if containsAny(q, []string{"wheelchair", "disability", "special assistance", "medical", "oxygen"}) {
		return "Special Assistance Services\n\n" +
			"Wheelchair service is free: request during booking or 48 hours before,\n" +
			"and airport staff will assist throughout.\n\n" +
			"Medical equipment: portable oxygen concentrators allowed with\n" +
			"pre-approval; mobility aids checked free of charge.\n\n" +
			"Hearing/vision impaired passengers get priority boarding and safety\n" +
			"briefing assistance. A fit-to-fly certificate may be required for\n" +
			"medical conditions.\n\n" +
			"Contact us 48 hours before travel for special assistance."
	}

	return "SkyLine Airways - How Can I Help?\n\n" +
		"I can assist you with:\n\n" +
		"Search & book flights\n" +
		"   Say: 'Find flights from Delhi to Mumbai'\n\n" +
		"Check your bookings\n" +
		"   Say: 'Show my bookings' or 'Check booking status'\n\n" +
		"View your profile\n" +
		"   Say: 'Show my profile' or 'My account details'\n\n" +
		"Flight information\n" +
		"   Say: 'Details of flight AI101'\n\n" +
		"Policies & information\n" +
		"   Ask about: baggage, check-in, cancellation, meals, seats, WiFi, visa, pets, children, special assistance\n\n" +
		"Sample booking query:\n" +
		"   'Book a flight from Delhi to Mumbai on 2025-12-20'\n\n" +
		"What would you like to know?"
}

// FlightDetails looks up one flight by its number.
func (r *Responders) FlightDetails(query string) string {
	num := reFlightNumber.FindString(strings.ToUpper(query))
	if num == "" {
		return "Please provide a flight number (e.g., 'SG123')."
	}

	fl, err := r.Flights.GetByNumber(num)
	if err != nil {
		utils.GetLogger().Warn("responders: flight details lookup failed", zap.Error(err))
		return msgLookupError
	}
	if fl == nil {
		return fmt.Sprintf("Flight %s not found.", num)
	}

	return fmt.Sprintf(
		"Flight Details: %s %s\n\n"+
			"Route: %s -> %s\n"+
			"Departure: %s\n"+
			"Arrival: %s\n"+
			"Aircraft: %s (%s)\n"+
			"Seats available: %d\n"+
			"Price: %s\n\n"+
			"To book this flight, say 'book this flight' or start a new search.",
		fl.Airline, fl.FlightNumber,
		fl.Origin, fl.Destination,
		fl.DepartureTime, fl.ArrivalTime,
		fl.AircraftType, fl.FlightType,
		fl.AvailableSeats, formatINR(fl.Price),
	)
}

// CheckBooking shows one booking when the query carries a numeric ID, and the
// whole list otherwise. An ID that matches nothing falls back to the list.
func (r *Responders) CheckBooking(query string, customerID int64) string {
	if customerID == 0 {
		return msgLoginForBookings
	}

	if m := reBookingID.FindStringSubmatch(query); m != nil {
		bookingID, _ := strconv.ParseInt(m[1], 10, 64)
		detail, err := r.Bookings.GetByID(bookingID, customerID)
		if err != nil {
			utils.GetLogger().Warn("responders: booking lookup failed", zap.Error(err))
			return msgLookupError
		}
		if detail != nil {
			return fmt.Sprintf(
				"Booking Details (ID: %d)\n\n"+
					"PNR: %s\n"+
					"Status: %s\n\n"+
					"Flight: %s %s (%s)\n"+
					"Route: %s -> %s\n"+
					"Departure: %s\n"+
					"Arrival: %s\n"+
					"Seat: %s\n"+
					"Total price: %s\n"+
					"Seats available on flight: %d",
				detail.BookingID,
				detail.PNR, detail.BookingStatus,
				detail.Flight.Airline, detail.Flight.FlightNumber, detail.Flight.FlightType,
				detail.Flight.Origin, detail.Flight.Destination,
				detail.Flight.DepartureTime, detail.Flight.ArrivalTime,
				detail.SeatNumber, formatINR(detail.TotalPrice),
				detail.Flight.AvailableSeats,
			)
		}
	}

	bookings, err := r.Bookings.ListByCustomer(customerID)
	if err != nil {
		utils.GetLogger().Warn("responders: booking list failed", zap.Error(err))
		return msgLookupError
	}
	if len(bookings) == 0 {
		return "You have no bookings yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your Bookings (%d total)\n", len(bookings))
	for _, bk := range bookings {
		fmt.Fprintf(&b,
			"\nBooking #%d (PNR: %s) [%s]\n"+
				"   %s %s\n"+
				"   %s -> %s\n"+
				"   Dep: %s | Seat: %s\n"+
				"   Price: %s\n",
			bk.BookingID, bk.PNR, bk.BookingStatus,
			bk.Flight.Airline, bk.Flight.FlightNumber,
			bk.Flight.Origin, bk.Flight.Destination,
			bk.Flight.DepartureTime, bk.SeatNumber,
			formatINR(bk.TotalPrice),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// CustomerInfo answers profile, booking-history and previous-flight queries.
// The default, when no keyword group matches, is the profile card.
func (r *Responders) CustomerInfo(query string, customerID int64) string {
	if customerID == 0 {
		return msgLoginForProfile
	}

	cust, err := r.Customers.GetByID(customerID)
	if err != nil {
		utils.GetLogger().Warn("responders: customer lookup failed", zap.Error(err))
		return msgLookupError
	}
	if cust == nil {
		return "Customer not found."
	}

	q := strings.ToLower(query)

	if containsAny(q, []string{"previous flight", "last flight", "past flight", "earlier flight"}) {
		detail, err := r.Bookings.LatestByCustomer(customerID)
		if err != nil {
			utils.GetLogger().Warn("responders: latest booking lookup failed", zap.Error(err))
			return msgLookupError
		}
		if detail == nil {
			return "No previous flight found."
		}
		return fmt.Sprintf(
			"Previous Flight Summary\n\n"+
				"Passenger: %s\n"+
				"PNR: %s\n"+
				"Booking ID: %d\n\n"+
				"Flight: %s %s (%s)\n"+
				"Route: %s -> %s\n"+
				"Departure: %s\n"+
				"Arrival: %s\n"+
				"Seat: %s\n"+
				"Fare: %s",
			cust.Name,
			detail.PNR, detail.BookingID,
			detail.Flight.Airline, detail.Flight.FlightNumber, detail.Flight.FlightType,
			detail.Flight.Origin, detail.Flight.Destination,
			detail.Flight.DepartureTime, detail.Flight.ArrivalTime,
			detail.SeatNumber, formatINR(detail.TotalPrice),
		)
	}

	if containsAny(q, []string{"bookings", "history", "trips", "travels", "my flights"}) {
		bookings, err := r.Bookings.ListByCustomer(customerID)
		if err != nil {
			utils.GetLogger().Warn("responders: booking history failed", zap.Error(err))
			return msgLookupError
		}
		if len(bookings) == 0 {
			return "No bookings found. Start by searching and booking a flight!"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Your Booking History (%d bookings)\n", len(bookings))
		for _, bk := range bookings {
			fmt.Fprintf(&b,
				"\nBooking #%d (PNR: %s) [%s]\n"+
					"   %s %s\n"+
					"   %s -> %s\n"+
					"   Departure: %s\n"+
					"   Arrival: %s\n"+
					"   Seat: %s | Fare: %s",
				bk.BookingID, bk.PNR, bk.BookingStatus,
				bk.Flight.Airline, bk.Flight.FlightNumber,
				bk.Flight.Origin, bk.Flight.Destination,
				bk.Flight.DepartureTime, bk.Flight.ArrivalTime,
				bk.SeatNumber, formatINR(bk.TotalPrice),
			)
		}
		return b.String()
	}

	return r.profileCard(cust)
}

func (r *Responders) profileCard(cust *models.Customer) string {
	return fmt.Sprintf(
		"Your Profile - %s\n\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Passport: %s\n"+
			"Frequent Flyer #: %s\n"+
			"Nationality: %s\n"+
			"Account Status: %s\n\n"+
			"For booking details, ask 'show my bookings' or 'check booking [ID]'",
		cust.Name, cust.Email, cust.Phone, cust.PassportNumber,
		cust.FrequentFlyerNumber, cust.Nationality, cust.Status,
	)
}
