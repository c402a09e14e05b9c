package model

import (
	"time"
)

const (
	EntityName = "customer"

	TypeRegular   = "Regular"
	TypeVIP       = "VIP"
	TypeCorporate = "Corporate"
	TypeGroup     = "Group"
	TypeWedding   = "Wedding"
)

// Customer is a registered guest. The phone number is a soft-unique key:
// registration checks it before inserting and reports a conflict instead
// of creating a duplicate. Customers are never hard-deleted.
type Customer struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`
	DateOfBirth  string `json:"dob,omitempty"`
	CustomerType string `json:"customer_type"`

	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email,omitempty"`

	IDType   string `json:"id_type,omitempty"`
	IDNumber string `json:"id_number,omitempty"`

	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`

	WhatsAppMarketing bool `json:"whatsapp_marketing"`
	BirthdayOffers    bool `json:"birthday_offers"`

	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}
