package domain

import (
	"fmt"
	"io"
)

// Vehicle owns a make and a year. Year may be updated after construction.
type Vehicle struct {
	Make string `json:"make"`
	Year int    `json:"year"`
}

func NewVehicle(make string, year int) Vehicle {
	return Vehicle{Make: make, Year: year}
}

// Info renders the fixed info line: "Make: <make>, Year: <year>".
func (v Vehicle) Info() string {
	return fmt.Sprintf("Make: %s, Year: %d", v.Make, v.Year)
}

// PrintInfo writes Info followed by a newline.
func (v Vehicle) PrintInfo(w io.Writer) error {
	_, err := fmt.Fprintln(w, v.Info())
	return err
}

// Car is a Vehicle plus a model. It does not override Info.
type Car struct {
	Vehicle
	Model string `json:"model"`
}

func NewCar(make string, year int, model string) Car {
	return Car{
		Vehicle: NewVehicle(make, year),
		Model:   model,
	}
}

// ModelInfo renders the fixed model line: "Model: <model>".
func (c Car) ModelInfo() string {
	return fmt.Sprintf("Model: %s", c.Model)
}

func (c Car) PrintModel(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.ModelInfo())
	return err
}
