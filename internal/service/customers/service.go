// Package customers implements the customer record service: CRUD on top of
// the repository plus the communication log and the best-effort welcome
// notifications fired after a successful create.
package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/domain/models"
	"github.com/agrodesk/agrodesk/internal/repository"
	"github.com/agrodesk/agrodesk/pkg/clients/notify"
)

const notifyTimeout = 10 * time.Second

// Service is the customer record service.
type Service struct {
	repo     repository.CustomerRepository
	notifier notify.Client
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new service instance. The notifier may be nil, in which
// case welcome notifications are skipped.
func NewService(repo repository.CustomerRepository, notifier notify.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns all customers, newest first.
func (s *Service) List(ctx context.Context) ([]models.Customer, error) {
	return s.repo.List(ctx)
}

// Search returns customers matching the query across name, phone, email and
// address. A blank query returns the full list.
func (s *Service) Search(ctx context.Context, query string) ([]models.Customer, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

// Get loads one customer.
func (s *Service) Get(ctx context.Context, id int) (models.Customer, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new customer with fresh account defaults and then fires
// the welcome email and SMS. Notification failures never fail the create;
// they surface only in the returned delivery outcomes.
func (s *Service) Create(ctx context.Context, customer models.Customer) (models.CreateCustomerResult, error) {
	if err := validate(customer); err != nil {
		return models.CreateCustomerResult{}, err
	}

	now := s.now()
	customer.LoyaltyPoints = 0
	customer.TotalPurchases = 0
	customer.CommunicationLog = []models.CommunicationEntry{}
	customer.LastVisit = &now
	customer.CreatedOn = now

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return models.CreateCustomerResult{}, err
	}

	result := models.CreateCustomerResult{Customer: created}
	result.Welcome.Email = s.sendWelcome(ctx, created, "email")
	result.Welcome.SMS = s.sendWelcome(ctx, created, "sms")
	return result, nil
}

// Update replaces the stored record. Callers must supply the complete
// desired entity to avoid field loss.
func (s *Service) Update(ctx context.Context, id int, customer models.Customer) (models.Customer, error) {
	if err := validate(customer); err != nil {
		return models.Customer{}, err
	}
	customer.ID = id
	return s.repo.Replace(ctx, customer)
}

// Delete removes one customer.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// AddCommunication prepends a timestamped entry to the customer's log and
// refreshes the last-visit marker.
func (s *Service) AddCommunication(ctx context.Context, id int, entry models.CommunicationEntry) (models.Customer, error) {
	if !models.ValidCommunicationType(entry.Type) {
		return models.Customer{}, fmt.Errorf("%w: unknown communication type %q", models.ErrValidation, entry.Type)
	}
	if strings.TrimSpace(entry.Notes) == "" {
		return models.Customer{}, fmt.Errorf("%w: communication notes are required", models.ErrValidation)
	}

	customer, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}

	now := s.now()
	entry.Date = now
	customer.CommunicationLog = append([]models.CommunicationEntry{entry}, customer.CommunicationLog...)
	customer.LastVisit = &now

	return s.repo.Replace(ctx, customer)
}

func (s *Service) sendWelcome(ctx context.Context, customer models.Customer, channel string) models.DeliveryOutcome {
	if s.notifier == nil {
		return models.DeliveryOutcome{Status: models.DeliverySkipped}
	}

	sendCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	var (
		result *notify.DeliveryResult
		err    error
	)
	if channel == "email" {
		result, err = s.notifier.SendWelcomeEmail(sendCtx, customer)
	} else {
		result, err = s.notifier.SendWelcomeSMS(sendCtx, customer)
	}
	if err != nil {
		s.logger.Warn("welcome notification failed",
			zap.String("channel", channel),
			zap.Int("customer_id", customer.ID),
			zap.Error(err))
		return models.DeliveryOutcome{Status: models.DeliveryFailed, Message: fmt.Sprintf("failed to send welcome %s", channel)}
	}

	if !result.Success {
		return models.DeliveryOutcome{Status: models.DeliveryFailed, Message: result.Message}
	}
	return models.DeliveryOutcome{Status: models.DeliverySent, Message: result.Message}
}

func validate(customer models.Customer) error {
	switch {
	case strings.TrimSpace(customer.Name) == "":
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	case strings.TrimSpace(customer.Phone) == "":
		return fmt.Errorf("%w: phone is required", models.ErrValidation)
	case strings.TrimSpace(customer.Email) == "":
		return fmt.Errorf("%w: email is required", models.ErrValidation)
	case strings.TrimSpace(customer.Address) == "":
		return fmt.Errorf("%w: address is required", models.ErrValidation)
	}
	return nil
}
