package system

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/sirupsen/logrus"

	"hotel/agents"
	"hotel/entities"
	"hotel/message"
)

const systemID = "system"

// Config tunes the assembled system. Zero values fall back to the
// default catalog, the default payment success rate and logrus logging.
type Config struct {
	Catalog            entities.RoomCatalog
	PaymentSuccessRate float64
	PaymentRandom      func() float64
	Logger             watermill.LoggerAdapter
}

// System wires all agents onto one bus and exposes the facade API
// consumed by demos and tests.
type System struct {
	bus      *message.Bus
	notifier *message.Notifier
	catalog  entities.RoomCatalog

	Receptionist *agents.Receptionist
	Availability *agents.Availability
	Payment      *agents.Payment
	Confirmation *agents.Confirmation
	Coordinator  *agents.Coordinator
}

func New() *System {
	return NewWithConfig(Config{})
}

func NewWithConfig(cfg Config) *System {
	if cfg.Catalog == nil {
		cfg.Catalog = entities.DefaultCatalog()
	}
	if cfg.PaymentSuccessRate == 0 {
		cfg.PaymentSuccessRate = agents.DefaultSuccessRate
	}
	if cfg.Logger == nil {
		cfg.Logger = message.NewLogrusAdapter(logrus.NewEntry(logrus.StandardLogger()))
	}

	bus := message.NewBus(cfg.Logger)
	notifier := message.NewNotifier(cfg.Logger)

	s := &System{
		bus:      bus,
		notifier: notifier,
		catalog:  cfg.Catalog,

		Receptionist: agents.NewReceptionist(),
		Availability: agents.NewAvailability(cfg.Catalog),
		Payment:      agents.NewPayment(cfg.PaymentSuccessRate, cfg.PaymentRandom),
		Confirmation: agents.NewConfirmation(),
	}
	s.Coordinator = agents.NewCoordinator(bus, notifier)

	for _, endpoint := range []message.Endpoint{
		s.Receptionist,
		s.Availability,
		s.Payment,
		s.Confirmation,
		s.Coordinator,
	} {
		bus.Register(endpoint)
	}

	return s
}

// CreateBooking runs the full booking workflow. The result status is one
// of success, unavailable, payment_failed or error.
func (s *System) CreateBooking(ctx context.Context, customer entities.Customer, booking entities.BookingDetails, paymentMethod string) entities.BookingWorkflowResult {
	var result entities.BookingWorkflowResult

	msg, err := message.NewRequest(systemID, agents.CoordinatorID, agents.ActionStartBooking, entities.StartBookingRequest{
		Customer:      customer,
		Booking:       booking,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return entities.BookingWorkflowResult{Status: entities.StatusError, Message: err.Error()}
	}

	resp := s.bus.Send(ctx, msg)
	if err := resp.Decode(&result); err != nil {
		return entities.BookingWorkflowResult{Status: entities.StatusError, Message: err.Error()}
	}
	return result
}

func (s *System) CheckAvailability(ctx context.Context, roomType, checkInDate, checkOutDate string, numberOfGuests int) entities.AvailabilityResult {
	var result entities.AvailabilityResult

	msg, err := message.NewRequest(systemID, agents.AvailabilityID, agents.ActionCheckAvailability, entities.AvailabilityRequest{
		RoomType:       roomType,
		CheckInDate:    checkInDate,
		CheckOutDate:   checkOutDate,
		NumberOfGuests: numberOfGuests,
	})
	if err != nil {
		return entities.AvailabilityResult{Status: entities.StatusError, Message: err.Error()}
	}

	resp := s.bus.Send(ctx, msg)
	if err := resp.Decode(&result); err != nil {
		return entities.AvailabilityResult{Status: entities.StatusError, Message: err.Error()}
	}
	return result
}

func (s *System) GetBookingStatus(ctx context.Context, reservationID string) entities.BookingStatusResult {
	var result entities.BookingStatusResult

	msg, err := message.NewRequest(systemID, agents.CoordinatorID, agents.ActionBookingStatus, entities.BookingStatusRequest{
		ReservationID: reservationID,
	})
	if err != nil {
		return entities.BookingStatusResult{Status: entities.StatusError, Message: err.Error()}
	}

	resp := s.bus.Send(ctx, msg)
	if err := resp.Decode(&result); err != nil {
		return entities.BookingStatusResult{Status: entities.StatusError, Message: err.Error()}
	}
	return result
}

func (s *System) Inquiry(ctx context.Context, inquiryType string) entities.InquiryResult {
	var result entities.InquiryResult

	msg, err := message.NewRequest(systemID, agents.ReceptionistID, agents.ActionInquiry, entities.InquiryRequest{
		InquiryType: inquiryType,
	})
	if err != nil {
		return entities.InquiryResult{Status: entities.StatusError}
	}

	resp := s.bus.Send(ctx, msg)
	if err := resp.Decode(&result); err != nil {
		return entities.InquiryResult{Status: entities.StatusError}
	}
	return result
}

func (s *System) RefundPayment(ctx context.Context, reservationID string) entities.RefundResult {
	var result entities.RefundResult

	msg, err := message.NewRequest(systemID, agents.PaymentID, agents.ActionRefundPayment, entities.RefundRequest{
		ReservationID: reservationID,
	})
	if err != nil {
		return entities.RefundResult{Status: entities.StatusError, Message: err.Error()}
	}

	resp := s.bus.Send(ctx, msg)
	if err := resp.Decode(&result); err != nil {
		return entities.RefundResult{Status: entities.StatusError, Message: err.Error()}
	}
	return result
}

// GetRoomInfo returns a copy of the static room catalog.
func (s *System) GetRoomInfo() entities.RoomCatalog {
	catalog := make(entities.RoomCatalog, len(s.catalog))
	for roomType, info := range s.catalog {
		catalog[roomType] = info
	}
	return catalog
}

// Notifications subscribes to the terminal workflow outcome feed.
func (s *System) Notifications(ctx context.Context) (<-chan *watermillMessage.Message, error) {
	return s.notifier.Subscribe(ctx)
}

func (s *System) Close() error {
	return s.notifier.Close()
}
