package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"hotel/entities"
	"hotel/system"
)

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	sys := system.New()
	defer sys.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifications, err := sys.Notifications(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to subscribe to notifications")
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case notification, ok := <-notifications:
				if !ok {
					return nil
				}
				fmt.Printf("[notification] %s\n", notification.Payload)
				notification.Ack()
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		runDemo(ctx, sys)
		// Give the notification consumer a moment to drain.
		time.Sleep(100 * time.Millisecond)
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("Demo failed")
	}
}

func runDemo(ctx context.Context, sys *system.System) {
	fmt.Println("Multi-Agent Hotel Reservation System - Demo")
	fmt.Println()

	fmt.Println("Available Room Types and Pricing:")
	catalog := sys.GetRoomInfo()
	for _, roomType := range []entities.RoomType{entities.RoomSingle, entities.RoomDouble, entities.RoomSuite, entities.RoomDeluxe} {
		info := catalog[roomType]
		fmt.Printf("  %s: $%.2f/night, up to %d guest(s)\n", info.Name, info.PricePerNight, info.Capacity)
	}
	fmt.Println()

	checkIn := time.Now().AddDate(0, 0, 7).Format("2006-01-02") + "T15:00:00"
	checkOut := time.Now().AddDate(0, 0, 10).Format("2006-01-02") + "T11:00:00"

	availability := sys.CheckAvailability(ctx, "double", checkIn, checkOut, 2)
	if availability.Available {
		fmt.Printf("Double room available: $%.2f/night, %d night(s), total $%.2f\n",
			availability.PricePerNight, availability.Nights, availability.TotalPrice)
	} else {
		fmt.Println("Double room not available")
	}
	fmt.Println()

	customer := entities.Customer{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "+1-555-0123",
		IDNumber: "ID12345",
	}
	booking := entities.BookingDetails{
		RoomType:        "double",
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  2,
		SpecialRequests: "Non-smoking room with city view",
	}

	result := sys.CreateBooking(ctx, customer, booking, "credit_card")
	fmt.Printf("Booking result: %s - %s\n", result.Status, result.Message)

	if result.Status != entities.StatusSuccess {
		return
	}

	fmt.Printf("  Reservation ID: %s\n", result.Reservation.ReservationID)
	fmt.Printf("  Transaction ID: %s\n", result.Payment.TransactionID)
	fmt.Printf("  Total: $%.2f\n", result.Reservation.TotalPrice)
	fmt.Println()

	status := sys.GetBookingStatus(ctx, result.Reservation.ReservationID)
	fmt.Printf("Booking status lookup: %s\n", status.Status)

	inquiry := sys.Inquiry(ctx, "policies")
	fmt.Printf("Inquiry (policies): %s\n", inquiry.Response)

	refund := sys.RefundPayment(ctx, result.Reservation.ReservationID)
	fmt.Printf("Refund: %s - %s\n", refund.Status, refund.Message)
}
