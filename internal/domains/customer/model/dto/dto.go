package dto

import (
	"frontdesk/internal/domains/customer/model"
	"frontdesk/shared/timezone"
)

type RegisterCustomerRequest struct {
	Name         string `json:"name"          validate:"required,max=100"`
	Age          int    `json:"age"           validate:"omitempty,gte=0,lte=120"`
	Gender       string `json:"gender"        validate:"omitempty,max=20"`
	DateOfBirth  string `json:"dob"           validate:"omitempty,datetime=2006-01-02"`
	CustomerType string `json:"customer_type" validate:"omitempty,oneof=Regular VIP Corporate Group Wedding"`

	Phone    string `json:"phone"    validate:"required,phone"`
	WhatsApp string `json:"whatsapp" validate:"omitempty,phone"`
	Email    string `json:"email"    validate:"omitempty,email,max=100"`

	IDType   string `json:"id_type"   validate:"omitempty,max=30"`
	IDNumber string `json:"id_number" validate:"omitempty,max=30"`

	Address string `json:"address" validate:"omitempty,max=200"`
	City    string `json:"city"    validate:"omitempty,max=50"`
	State   string `json:"state"   validate:"omitempty,max=50"`
	Pincode string `json:"pincode" validate:"omitempty,max=10"`
	Country string `json:"country" validate:"omitempty,max=50"`

	WhatsAppMarketing bool `json:"whatsapp_marketing"`
	BirthdayOffers    bool `json:"birthday_offers"`
}

// ToModel builds the customer entity. The id is left unset; the service
// allocates it only after every precondition has passed. The WhatsApp
// number defaults to the phone number.
func (r *RegisterCustomerRequest) ToModel() model.Customer {
	customerType := r.CustomerType
	if customerType == "" {
		customerType = model.TypeRegular
	}

	whatsapp := r.WhatsApp
	if whatsapp == "" {
		whatsapp = r.Phone
	}

	now := timezone.Now()

	return model.Customer{
		Name:              r.Name,
		Age:               r.Age,
		Gender:            r.Gender,
		DateOfBirth:       r.DateOfBirth,
		CustomerType:      customerType,
		Phone:             r.Phone,
		WhatsApp:          whatsapp,
		Email:             r.Email,
		IDType:            r.IDType,
		IDNumber:          r.IDNumber,
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		Pincode:           r.Pincode,
		Country:           r.Country,
		WhatsAppMarketing: r.WhatsAppMarketing,
		BirthdayOffers:    r.BirthdayOffers,
		CreatedAt:         now,
		LastUpdated:       now,
	}
}

type UpdateCustomerRequest struct {
	Name         string `json:"name"          validate:"omitempty,max=100"`
	Age          int    `json:"age"           validate:"omitempty,gte=0,lte=120"`
	Gender       string `json:"gender"        validate:"omitempty,max=20"`
	DateOfBirth  string `json:"dob"           validate:"omitempty,datetime=2006-01-02"`
	CustomerType string `json:"customer_type" validate:"omitempty,oneof=Regular VIP Corporate Group Wedding"`

	WhatsApp string `json:"whatsapp" validate:"omitempty,phone"`
	Email    string `json:"email"    validate:"omitempty,email,max=100"`

	Address string `json:"address" validate:"omitempty,max=200"`
	City    string `json:"city"    validate:"omitempty,max=50"`
	State   string `json:"state"   validate:"omitempty,max=50"`
	Pincode string `json:"pincode" validate:"omitempty,max=10"`

	WhatsAppMarketing *bool `json:"whatsapp_marketing"`
	BirthdayOffers    *bool `json:"birthday_offers"`
}

// Apply copies the set fields onto an existing customer in place.
func (r *UpdateCustomerRequest) Apply(c *model.Customer) {
	if r.Name != "" {
		c.Name = r.Name
	}
	if r.Age != 0 {
		c.Age = r.Age
	}
	if r.Gender != "" {
		c.Gender = r.Gender
	}
	if r.DateOfBirth != "" {
		c.DateOfBirth = r.DateOfBirth
	}
	if r.CustomerType != "" {
		c.CustomerType = r.CustomerType
	}
	if r.WhatsApp != "" {
		c.WhatsApp = r.WhatsApp
	}
	if r.Email != "" {
		c.Email = r.Email
	}
	if r.Address != "" {
		c.Address = r.Address
	}
	if r.City != "" {
		c.City = r.City
	}
	if r.State != "" {
		c.State = r.State
	}
	if r.Pincode != "" {
		c.Pincode = r.Pincode
	}
	if r.WhatsAppMarketing != nil {
		c.WhatsAppMarketing = *r.WhatsAppMarketing
	}
	if r.BirthdayOffers != nil {
		c.BirthdayOffers = *r.BirthdayOffers
	}

	c.LastUpdated = timezone.Now()
}
