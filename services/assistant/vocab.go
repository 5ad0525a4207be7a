// File: services/assistant/vocab.go
package assistant

// The extractor vocabulary and keyword tables live here as plain data so
// tests can reason about them and the rest of the package stays logic-only.

// cityVocabulary lists every city name and IATA code the extractor
// recognizes. Order matters: pattern matching picks the first entry that
// fits, and the fallback scan reports entries by position of first mention.
var cityVocabulary = []string{
	"delhi", "del", "mumbai", "bom", "bengaluru", "bangalore", "blr",
	"hyderabad", "hyd", "chennai", "maa", "kolkata", "ccu",
	"dubai", "dxb", "singapore", "sin", "london", "lhr", "new york", "jfk", "pune",
}

// monthTable maps three-letter month prefixes to month numbers for the
// "on 5 Dec" date form.
var monthTable = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// paymentMethods maps utterance fragments to canonical method names. The
// slice keeps a fixed iteration order so "net" and "bank" resolve the same
// way every time; first matching fragment wins.
var paymentMethods = []struct {
	Fragment string
	Method   string
}{
	{"upi", "UPI"},
	{"credit", "Credit Card"},
	{"debit", "Debit Card"},
	{"net", "Net Banking"},
	{"bank", "Net Banking"},
}

// Router keyword tables. These drive the deterministic override rules and
// the keyword fallback classifier; substring matching throughout, as the
// utterance is lowercased before any rule runs.
var (
	routerCities = []string{
		"delhi", "mumbai", "pune", "bangalore", "bengaluru", "chennai",
		"hyderabad", "kolkata", "dubai", "singapore", "london", "new york",
		"jfk", "bom", "del", "blr", "hyd", "maa", "ccu", "dxb", "sin", "lhr",
	}

	searchIntentWords = []string{
		"search", "find", "show", "available", "flights", "flight",
		"looking for", "want to fly", "travel", "traveling",
		"go to", "going to", "fly to", "fly from",
	}

	flightDetailPhrases = []string{
		"details of flight", "tell me about flight", "flight information",
		"about flight", "show flight", "flight details",
	}

	bookingStatusPhrases = []string{
		"check booking", "booking status", "my booking", "booking details",
		"pnr", "reservation status",
	}

	profilePhrases = []string{
		"my profile", "my account", "my details", "my bookings",
		"booking history", "travel history",
	}

	bookingIntentWords = []string{"book", "reserve", "purchase", "i want to book", "need to book"}

	// greetingWords match whole words only: "hi" as a substring would turn
	// every "delhi" into small talk.
	greetingWords   = []string{"hi", "hello", "hey", "namaste"}
	greetingPhrases = []string{"how are you", "good morning", "good evening"}

	fallbackSearchWords = []string{
		"search", "find", "available", "flights", "show me",
		"delhi", "mumbai", "pune", "bangalore", "chennai", "hyderabad",
		"kolkata", "dubai", "singapore", "london",
	}

	fallbackBookWords    = []string{"book", "reserve", "purchase", "buy ticket", "i want to book", "need to book"}
	fallbackCheckWords   = []string{"check booking", "booking status", "my booking", "booking id"}
	fallbackManageWords  = []string{"cancel", "modify", "change", "reschedule"}
	fallbackAccountWords = []string{"my account", "my profile", "my bookings", "my trips", "previous"}
	complaintWords       = []string{"complaint", "complain", "issue", "problem"}
)
