package domain

import (
	"encoding/json"
	"time"
)

// Channel is where a booking came from.
type Channel string

const (
	ChannelApp Channel = "APP"
	ChannelIVR Channel = "IVR"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID             int64  // storage row id, zero until persisted
	BookingID      string // rider-facing reference, "UCA..."
	Phone          string
	PickupLocation string
	DropLocation   *string
	DriverName     string
	DriverPhone    string
	Fare           float64
	ETAMinutes     int
	Status         BookingStatus
	Channel        Channel
	CreatedAt      time.Time
	RawData        json.RawMessage // request as received, for support
}
