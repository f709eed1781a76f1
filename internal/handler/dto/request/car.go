package request

import (
	"car-rental/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreateCarRequest struct {
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	Color          string `json:"color"`
	Category       string `json:"category"`
	Seats          int    `json:"seats"`
	Transmission   string `json:"transmission"`
	FuelType       string `json:"fuelType"`
	Mileage        int    `json:"mileage"`
	DailyRateCents int64  `json:"dailyRateCents"`
	ImageURL       string `json:"imageUrl"`
}

func (r *CreateCarRequest) ToInput() (commands.CreateCarInput, error) {
	var in commands.CreateCarInput
	err := copier.Copy(&in, r)
	return in, err
}

type UpdateCarRequest struct {
	Make           *string `json:"make"`
	Model          *string `json:"model"`
	Year           *int    `json:"year"`
	Color          *string `json:"color"`
	Category       *string `json:"category"`
	Seats          *int    `json:"seats"`
	Transmission   *string `json:"transmission"`
	FuelType       *string `json:"fuelType"`
	Mileage        *int    `json:"mileage"`
	DailyRateCents *int64  `json:"dailyRateCents"`
	ImageURL       *string `json:"imageUrl"`
	Status         *string `json:"status"`
}

func (r *UpdateCarRequest) ToInput() (commands.UpdateCarInput, error) {
	var in commands.UpdateCarInput
	err := copier.Copy(&in, r)
	return in, err
}
