package converter

import (
	"encoding/json"
	"fmt"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
)

func CarToInfra(c *car.Car) query.CreateCarParams {
	s := c.Specs()
	return query.CreateCarParams{
		ID:             c.ID(),
		Make:           s.Make,
		Model:          s.Model,
		Year:           toInt32(s.Year),
		Color:          pgconv.TextFromString(s.Color),
		Category:       string(s.Category),
		Seats:          toInt32(s.Seats),
		Transmission:   string(s.Transmission),
		FuelType:       string(s.FuelType),
		Mileage:        toInt32(s.Mileage),
		DailyRateCents: s.DailyRateCents,
		Status:         string(c.Status()),
		ImageUrl:       pgconv.TextFromString(s.ImageURL),
		CreatedAt:      pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CarToUpdateParams(c *car.Car) query.UpdateCarParams {
	p := CarToInfra(c)
	return query.UpdateCarParams{
		ID:             p.ID,
		Make:           p.Make,
		Model:          p.Model,
		Year:           p.Year,
		Color:          p.Color,
		Category:       p.Category,
		Seats:          p.Seats,
		Transmission:   p.Transmission,
		FuelType:       p.FuelType,
		Mileage:        p.Mileage,
		DailyRateCents: p.DailyRateCents,
		Status:         p.Status,
		ImageUrl:       p.ImageUrl,
		UpdatedAt:      pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CarFromInfra(row query.Cars) (*car.Car, error) {
	refs, err := RefsFromJSON(row.Reservations)
	if err != nil {
		return nil, err
	}
	return car.ReconstructCar(row.ID, SpecsFromInfra(row), car.FleetStatus(row.Status), refs, row.CreatedAt.Time, row.UpdatedAt.Time), nil
}

func SpecsFromInfra(row query.Cars) car.Specs {
	return car.Specs{
		Make:           row.Make,
		Model:          row.Model,
		Year:           int(row.Year),
		Color:          pgconv.StringFromPgtype(row.Color),
		Category:       car.Category(row.Category),
		Seats:          int(row.Seats),
		Transmission:   car.Transmission(row.Transmission),
		FuelType:       car.FuelType(row.FuelType),
		Mileage:        int(row.Mileage),
		DailyRateCents: row.DailyRateCents,
		ImageURL:       pgconv.StringFromPgtype(row.ImageUrl),
	}
}

func RefsFromJSON(raw []byte) ([]reservation.Ref, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var refs []reservation.Ref
	if err := json.Unmarshal(raw, &refs); err != nil {
		return nil, fmt.Errorf("decode reservation refs: %w", err)
	}
	return refs, nil
}

func RefToJSON(ref reservation.Ref) ([]byte, error) {
	return json.Marshal(ref)
}

func toInt32(v int) int32 {
	if v > 1<<31-1 {
		return 1<<31 - 1
	}
	if v < -1<<31 {
		return -1 << 31
	}
	return int32(v) // #nosec G115 -- clamped above
}
