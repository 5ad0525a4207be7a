package models

// Customer is an airline customer account.
type Customer struct {
	CustomerID          int64  `bson:"customer_id" json:"customer_id"`
	Name                string `bson:"name" json:"name"`
	Email               string `bson:"email" json:"email"`
	Phone               string `bson:"phone" json:"phone"`
	PasswordHash        string `bson:"password_hash" json:"-"`
	PassportNumber      string `bson:"passport_number" json:"passport_number,omitempty"`
	FrequentFlyerNumber string `bson:"frequent_flyer_number" json:"frequent_flyer_number,omitempty"`
	Nationality         string `bson:"nationality" json:"nationality"`
	Status              string `bson:"status" json:"status"`
}
