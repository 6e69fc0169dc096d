package cabsdk

import (
	"encoding/json"
	"time"

	"github.com/akshat7606/QuickC/pkg/faillog"
)

// Ride types accepted by Search. RideTypeAny matches every vehicle.
const (
	RideTypeBike  = "bike"
	RideTypeAuto  = "auto"
	RideTypeSedan = "sedan"
	RideTypeSUV   = "suv"
	RideTypeAny   = "any"
)

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned with 400 when a request body breaks
// field rules. Details maps JSON field name to the failed rule.
type ValidationErrorResponse struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description"`
	Details          map[string]string `json:"details,omitempty"`
}

// ProxyErrorResponse is returned by the geocoding proxy on 502. The
// upstream body and the sanitized logs are only present in debug mode.
type ProxyErrorResponse struct {
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
	UpstreamStatus   int             `json:"upstream_status,omitempty"`
	UpstreamBody     string          `json:"upstream_body,omitempty"`
	SanitizedLogs    []faillog.Entry `json:"sanitized_logs,omitempty"`
}

// ============================================================================
// Rides
// ============================================================================

type SearchRequest struct {
	PickupLat     float64  `json:"pickup_lat" validate:"latitude"`
	PickupLng     float64  `json:"pickup_lng" validate:"longitude"`
	PickupAddress string   `json:"pickup_address" validate:"required,max=500"`
	DropLat       *float64 `json:"drop_lat,omitempty" validate:"omitempty,latitude"`
	DropLng       *float64 `json:"drop_lng,omitempty" validate:"omitempty,longitude"`
	DropAddress   *string  `json:"drop_address,omitempty" validate:"omitempty,max=500"`
	RideType      string   `json:"ride_type,omitempty" validate:"omitempty,oneof=bike auto sedan suv any"`
}

// DriverOffer is one priced ride option. DriverID is stable for a driver
// across searches and is what BookRequest expects.
type DriverOffer struct {
	DriverID    string  `json:"driver_id"`
	DriverName  string  `json:"driver_name"`
	VehicleType string  `json:"vehicle_type"`
	Fare        float64 `json:"fare"`
	ETAMinutes  int     `json:"eta_minutes"`
	Rating      float64 `json:"rating"`
	Phone       string  `json:"phone"`
}

type SearchResponse struct {
	Offers   []DriverOffer `json:"offers"`
	SearchID string        `json:"search_id"`
}

type BookRequest struct {
	Phone         string   `json:"phone" validate:"required,min=5,max=20"`
	PickupLat     float64  `json:"pickup_lat" validate:"latitude"`
	PickupLng     float64  `json:"pickup_lng" validate:"longitude"`
	PickupAddress string   `json:"pickup_address" validate:"required,max=500"`
	DropLat       *float64 `json:"drop_lat,omitempty" validate:"omitempty,latitude"`
	DropLng       *float64 `json:"drop_lng,omitempty" validate:"omitempty,longitude"`
	DropAddress   *string  `json:"drop_address,omitempty" validate:"omitempty,max=500"`
	DriverID      string   `json:"driver_id" validate:"required"`
	Fare          float64  `json:"fare" validate:"gt=0"`
}

type BookingResponse struct {
	BookingID   string  `json:"booking_id"`
	DriverName  string  `json:"driver_name"`
	DriverPhone string  `json:"driver_phone"`
	Fare        float64 `json:"fare"`
	ETAMinutes  int     `json:"eta_minutes"`
	Status      string  `json:"status"`
}

// BookingRecord is a stored booking as returned by history and lookup.
type BookingRecord struct {
	BookingID      string    `json:"booking_id"`
	Phone          string    `json:"phone"`
	PickupLocation string    `json:"pickup_location"`
	DropLocation   *string   `json:"drop_location"`
	DriverName     string    `json:"driver_name"`
	DriverPhone    string    `json:"driver_phone"`
	Fare           float64   `json:"fare"`
	Status         string    `json:"status"`
	Channel        string    `json:"channel"`
	CreatedAt      time.Time `json:"created_at"`
	ETAMinutes     int       `json:"eta_minutes"`
}

type HistoryResponse struct {
	Phone    string          `json:"phone"`
	Bookings []BookingRecord `json:"bookings"`
}

// ============================================================================
// Geocoding
// ============================================================================

// GeocodeResult is the provider's JSON, passed through untouched.
type GeocodeResult = json.RawMessage

type FailureLogsResponse struct {
	Entries []faillog.Entry `json:"entries"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database   string `json:"database"`
	FailureLog string `json:"failure_log"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type PartnerHealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Partners  map[string]string `json:"partners"`
}

type ServiceInfoResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
