package oop

import (
	"io"
	"strconv"
)

// Mobile is an encapsulated value object: name, model number and price are fixed
// at construction and only readable through Display.
type Mobile struct {
	name  string
	model int
	price float32
}

// NewMobile constructs a Mobile with every field supplied up front.
func NewMobile(name string, model int, price float32) Mobile {
	return Mobile{name: name, model: model, price: price}
}

// Display writes the mobile's details, one field per line.
//
// Example:
//
//	MOBILE: OnePlus
//	MODEL NO: 11
//	PRICE: 425000
func (m Mobile) Display(w io.Writer) error {
	_, err := io.WriteString(w,
		"MOBILE: "+m.name+"\n"+
			"MODEL NO: "+strconv.Itoa(m.model)+"\n"+
			"PRICE: "+formatFloat(m.price)+"\n")
	return err
}
