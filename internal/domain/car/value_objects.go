package car

import "errors"

var (
	ErrInvalidCategory     = errors.New("invalid car category")
	ErrInvalidTransmission = errors.New("invalid transmission")
	ErrInvalidFuelType     = errors.New("invalid fuel type")
	ErrInvalidFleetStatus  = errors.New("invalid car status")
)

type Category string

const (
	CategorySedan       Category = "Sedan"
	CategorySUV         Category = "SUV"
	CategoryHatchback   Category = "Hatchback"
	CategoryConvertible Category = "Convertible"
	CategoryCoupe       Category = "Coupe"
	CategoryVan         Category = "Van"
	CategoryTruck       Category = "Truck"
	CategoryLuxury      Category = "Luxury"
)

func (c Category) IsValid() bool {
	switch c {
	case CategorySedan, CategorySUV, CategoryHatchback, CategoryConvertible,
		CategoryCoupe, CategoryVan, CategoryTruck, CategoryLuxury:
		return true
	default:
		return false
	}
}

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

func (t Transmission) IsValid() bool {
	return t == TransmissionAutomatic || t == TransmissionManual
}

type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

func (f FuelType) IsValid() bool {
	switch f {
	case FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid:
		return true
	default:
		return false
	}
}

// FleetStatus is the operational state of the vehicle, independent of its bookings.
type FleetStatus string

const (
	FleetAvailable   FleetStatus = "available"
	FleetRented      FleetStatus = "rented"
	FleetMaintenance FleetStatus = "maintenance"
)

func (s FleetStatus) IsValid() bool {
	switch s {
	case FleetAvailable, FleetRented, FleetMaintenance:
		return true
	default:
		return false
	}
}
