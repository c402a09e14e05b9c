package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/persist"
	"frontdesk/internal/store"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

type Customer interface {
	Register(ctx context.Context, req dto.RegisterCustomerRequest) (model.Customer, error)
	Update(ctx context.Context, id int64, req dto.UpdateCustomerRequest) (model.Customer, error)
	Get(ctx context.Context, id int64) (model.Customer, error)
	FindByPhone(ctx context.Context, phone string) (model.Customer, bool)
	List(ctx context.Context) []model.Customer
}

type serviceImpl struct {
	store     *store.Store
	committer *persist.Committer
}

func New(st *store.Store, committer *persist.Committer) Customer {
	return &serviceImpl{
		store:     st,
		committer: committer,
	}
}

// Register creates a new customer. The phone number is a soft-unique
// key: a second registration with a known phone is rejected with a
// conflict so the caller can offer update-instead-of-duplicate.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterCustomerRequest) (model.Customer, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return model.Customer{}, err
	}

	if existing := s.store.CustomerByPhone(req.Phone); existing != nil {
		log.Info().
			Str("phone", req.Phone).
			Int64("customerID", existing.ID).
			Msg("registration rejected, phone already on file")

		return model.Customer{}, failure.Conflict(fmt.Sprintf("customer with phone %s already exists", req.Phone)) //nolint:wrapcheck
	}

	customer := req.ToModel()
	customer.ID = s.store.NextCustomerID()
	s.store.Customers = append(s.store.Customers, customer)

	log.Info().
		Int64("customerID", customer.ID).
		Str("type", customer.CustomerType).
		Bool("marketing", customer.WhatsAppMarketing).
		Msg("customer registered")

	if err := s.committer.Commit(ctx); err != nil {
		return customer, err
	}

	return customer, nil
}

// Update mutates a customer in place. Customers are never deleted.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateCustomerRequest) (model.Customer, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return model.Customer{}, err
	}

	customer := s.store.CustomerByID(id)
	if customer == nil {
		return model.Customer{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	req.Apply(customer)

	log.Info().Int64("customerID", customer.ID).Msg("customer updated")

	if err := s.committer.Commit(ctx); err != nil {
		return *customer, err
	}

	return *customer, nil
}

func (s *serviceImpl) Get(_ context.Context, id int64) (model.Customer, error) {
	customer := s.store.CustomerByID(id)
	if customer == nil {
		return model.Customer{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return *customer, nil
}

func (s *serviceImpl) FindByPhone(_ context.Context, phone string) (model.Customer, bool) {
	customer := s.store.CustomerByPhone(phone)
	if customer == nil {
		return model.Customer{}, false
	}

	return *customer, true
}

func (s *serviceImpl) List(_ context.Context) []model.Customer {
	out := make([]model.Customer, len(s.store.Customers))
	copy(out, s.store.Customers)

	return out
}
