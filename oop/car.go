package oop

import (
	"io"
	"strconv"
)

// Car is initialized entirely by its constructor; there is no zero-value setup step.
type Car struct {
	year  int
	name  string
	model string
}

// NewCar constructs a Car with every field supplied up front.
func NewCar(year int, name, model string) Car {
	return Car{year: year, name: name, model: model}
}

// Display writes "My car => <name> <model> <year>" without a trailing newline.
func (c Car) Display(w io.Writer) error {
	_, err := io.WriteString(w, "My car => "+c.name+" "+c.model+" "+strconv.Itoa(c.year))
	return err
}
