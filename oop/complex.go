package oop

import (
	"io"
	"strconv"
)

// Complex is an integer complex number used to demonstrate a binary operator.
type Complex struct {
	real int
	img  int
}

// NewComplex constructs re + im·i. The zero value is 0 + 0i.
func NewComplex(re, im int) Complex {
	return Complex{real: re, img: im}
}

// Plus returns the element-wise sum of c and other.
//
// Both operands are passed by value, so neither is modified.
func (c Complex) Plus(other Complex) Complex {
	return Complex{
		real: c.real + other.real,
		img:  c.img + other.img,
	}
}

// Display writes "<real> + <img>i" followed by a newline.
// A negative imaginary part is printed as-is, e.g. "1 + -2i".
func (c Complex) Display(w io.Writer) error {
	_, err := io.WriteString(w, strconv.Itoa(c.real)+" + "+strconv.Itoa(c.img)+"i\n")
	return err
}
