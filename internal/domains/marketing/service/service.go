package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/store"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

// Marketing holds the read-only selectors feeding the outbound WhatsApp
// campaigns. Message composition and per-recipient link building belong
// to the external messaging collaborator; this service only produces the
// recipient lists.
type Marketing interface {
	TodaysBirthdays(ctx context.Context) []model.Customer
	BirthdaysOn(ctx context.Context, date time.Time) []model.Customer
	MarketingOptIns(ctx context.Context) []model.Customer
	VIPOptIns(ctx context.Context) []model.Customer
	CorporateOptIns(ctx context.Context) []model.Customer
	RegularOptIns(ctx context.Context) []model.Customer
	OptInsByType(ctx context.Context, customerType string) []model.Customer
}

type serviceImpl struct {
	store *store.Store
}

func New(st *store.Store) Marketing {
	return &serviceImpl{store: st}
}

// TodaysBirthdays selects customers whose date of birth falls on today's
// month and day, year ignored, on the application clock.
func (s *serviceImpl) TodaysBirthdays(ctx context.Context) []model.Customer {
	return s.BirthdaysOn(ctx, timezone.Now())
}

// BirthdaysOn is TodaysBirthdays for an arbitrary evaluation date.
// Birthday campaigns require both the marketing and the birthday-offers
// opt-in.
func (s *serviceImpl) BirthdaysOn(_ context.Context, date time.Time) []model.Customer {
	out := make([]model.Customer, 0)

	for _, c := range s.store.Customers {
		if c.DateOfBirth == "" || !c.BirthdayOffers || !c.WhatsAppMarketing {
			continue
		}

		dob, err := timezone.Parse(constant.DateFormat, c.DateOfBirth)
		if err != nil {
			log.Warn().
				Int64("customerID", c.ID).
				Str("dob", c.DateOfBirth).
				Msg("skipping customer with unparseable date of birth")

			continue
		}

		if timezone.SameMonthDay(dob, date) {
			out = append(out, c)
		}
	}

	return out
}

// MarketingOptIns selects every customer who opted into WhatsApp
// marketing.
func (s *serviceImpl) MarketingOptIns(_ context.Context) []model.Customer {
	return s.filter(func(c model.Customer) bool {
		return c.WhatsAppMarketing
	})
}

func (s *serviceImpl) VIPOptIns(ctx context.Context) []model.Customer {
	return s.OptInsByType(ctx, model.TypeVIP)
}

func (s *serviceImpl) CorporateOptIns(ctx context.Context) []model.Customer {
	return s.OptInsByType(ctx, model.TypeCorporate)
}

func (s *serviceImpl) RegularOptIns(ctx context.Context) []model.Customer {
	return s.OptInsByType(ctx, model.TypeRegular)
}

// OptInsByType selects opted-in customers of one customer type.
func (s *serviceImpl) OptInsByType(_ context.Context, customerType string) []model.Customer {
	return s.filter(func(c model.Customer) bool {
		return c.CustomerType == customerType && c.WhatsAppMarketing
	})
}

func (s *serviceImpl) filter(keep func(model.Customer) bool) []model.Customer {
	out := make([]model.Customer, 0)
	for _, c := range s.store.Customers {
		if keep(c) {
			out = append(out, c)
		}
	}

	return out
}
