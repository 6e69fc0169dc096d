// Package catalog loads the driver roster that ride search prices against.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/akshat7606/QuickC/internal/cab/domain"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed drivers.yaml
var defaultDrivers []byte

// driverNamespace scopes driver IDs so the same phone always maps to the
// same UUID across restarts and replicas.
var driverNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://quickc.app/drivers"))

var ErrUnknownDriver = errors.New("catalog: unknown driver")

type file struct {
	Drivers []entry `yaml:"drivers"`
}

type entry struct {
	Name        string  `yaml:"name"`
	Phone       string  `yaml:"phone"`
	VehicleType string  `yaml:"vehicle_type"`
	Rating      float64 `yaml:"rating"`
	Unavailable bool    `yaml:"unavailable"`
}

// Catalog is an immutable driver roster.
type Catalog struct {
	drivers []domain.Driver
	byID    map[string]domain.Driver
}

// Default returns the roster compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultDrivers)
}

// Load reads a roster from path, or returns Default when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read driver catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML roster.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse driver catalog: %w", err)
	}
	if len(f.Drivers) == 0 {
		return nil, errors.New("driver catalog is empty")
	}

	c := &Catalog{byID: make(map[string]domain.Driver, len(f.Drivers))}
	for i, e := range f.Drivers {
		vt, ok := domain.ParseVehicleType(e.VehicleType)
		if !ok || vt == "" {
			return nil, fmt.Errorf("driver %d (%s): unknown vehicle type %q", i, e.Name, e.VehicleType)
		}
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Phone) == "" {
			return nil, fmt.Errorf("driver %d: name and phone are required", i)
		}
		if e.Rating < 0 || e.Rating > 5 {
			return nil, fmt.Errorf("driver %d (%s): rating %.1f out of range", i, e.Name, e.Rating)
		}

		d := domain.Driver{
			ID:          DriverID(e.Phone),
			Name:        e.Name,
			Phone:       e.Phone,
			VehicleType: vt,
			Rating:      e.Rating,
			Available:   !e.Unavailable,
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("driver %d (%s): duplicate phone %s", i, e.Name, e.Phone)
		}
		c.drivers = append(c.drivers, d)
		c.byID[d.ID] = d
	}
	return c, nil
}

// DriverID derives the stable ID for a driver's phone number.
func DriverID(phone string) string {
	return uuid.NewSHA1(driverNamespace, []byte(strings.TrimSpace(phone))).String()
}

// Available returns the drivers that can take rides, filtered by vehicle
// type unless vt is empty.
func (c *Catalog) Available(vt domain.VehicleType) []domain.Driver {
	out := make([]domain.Driver, 0, len(c.drivers))
	for _, d := range c.drivers {
		if !d.Available || (vt != "" && d.VehicleType != vt) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Driver looks a driver up by ID.
func (c *Catalog) Driver(id string) (domain.Driver, error) {
	d, ok := c.byID[id]
	if !ok {
		return domain.Driver{}, ErrUnknownDriver
	}
	return d, nil
}

// Len is the roster size, available or not.
func (c *Catalog) Len() int { return len(c.drivers) }
