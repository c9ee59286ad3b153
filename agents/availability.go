package agents

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"hotel/entities"
	"hotel/message"
)

// Availability answers whether a stay is bookable and what it costs,
// based on the static room catalog.
type Availability struct {
	catalog  entities.RoomCatalog
	handlers map[string]handlerFunc
	logger   *logrus.Entry
}

func NewAvailability(catalog entities.RoomCatalog) *Availability {
	if catalog == nil {
		panic("catalog is required")
	}
	a := &Availability{
		catalog: catalog,
		logger:  logrus.WithField("agent", AvailabilityID),
	}
	a.handlers = map[string]handlerFunc{
		ActionCheckAvailability: a.checkAvailability,
		ActionCalculatePrice:    a.calculatePrice,
	}
	return a
}

func (a *Availability) ID() string {
	return AvailabilityID
}

func (a *Availability) Handle(ctx context.Context, msg *message.Message) *message.Message {
	return dispatch(ctx, a.handlers, msg)
}

func (a *Availability) checkAvailability(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.AvailabilityRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to check availability: %v", err))
	}

	info, quote, err := a.quote(req.RoomType, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to check availability: %v", err))
	}

	// A category is available iff its static inventory is above zero.
	// There is no per-date inventory tracking or decrementing.
	if info.Inventory <= 0 {
		return reply(msg, entities.AvailabilityResult{
			Status:    entities.StatusSuccess,
			Available: false,
			Message:   "Room not available for selected dates",
		})
	}

	return reply(msg, entities.AvailabilityResult{
		Status:        entities.StatusSuccess,
		Available:     true,
		RoomType:      req.RoomType,
		PricePerNight: quote.PricePerNight,
		Nights:        quote.Nights,
		TotalPrice:    quote.TotalPrice,
		Message:       fmt.Sprintf("Room available. Total: $%.2f for %d night(s)", quote.TotalPrice, quote.Nights),
	})
}

func (a *Availability) calculatePrice(ctx context.Context, msg *message.Message) *message.Message {
	var req entities.AvailabilityRequest
	if err := msg.Decode(&req); err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to calculate price: %v", err))
	}

	_, quote, err := a.quote(req.RoomType, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return msg.ErrorReply(fmt.Sprintf("failed to calculate price: %v", err))
	}

	return reply(msg, quote)
}

func (a *Availability) quote(roomType, checkInRaw, checkOutRaw string) (entities.RoomInfo, entities.PriceQuote, error) {
	info, err := a.catalog.Info(entities.RoomType(roomType))
	if err != nil {
		return entities.RoomInfo{}, entities.PriceQuote{}, err
	}

	checkIn, err := entities.ParseDate(checkInRaw)
	if err != nil {
		return entities.RoomInfo{}, entities.PriceQuote{}, err
	}

	checkOut, err := entities.ParseDate(checkOutRaw)
	if err != nil {
		return entities.RoomInfo{}, entities.PriceQuote{}, err
	}

	if !checkOut.After(checkIn) {
		return entities.RoomInfo{}, entities.PriceQuote{}, fmt.Errorf("check-out date must be after check-in date")
	}

	nights := entities.Nights(checkIn, checkOut)

	return info, entities.PriceQuote{
		Status:        entities.StatusSuccess,
		PricePerNight: info.PricePerNight,
		Nights:        nights,
		TotalPrice:    float64(nights) * info.PricePerNight,
	}, nil
}
