package oop

import (
	"io"
	"strconv"
)

// Counter holds an age that can only change through the increment methods.
type Counter struct {
	age int
}

// NewCounter returns a counter starting at 0.
func NewCounter() *Counter { return &Counter{} }

// NewCounterAt returns a counter starting at age.
func NewCounterAt(age int) *Counter { return &Counter{age: age} }

// PreIncrement adds one to the counter in place.
func (c *Counter) PreIncrement() {
	c.age++
}

// PostIncrement adds one to the counter in place.
//
// Unlike a conventional post-increment it does not hand back the previous value:
// both increment forms have the same observable effect.
func (c *Counter) PostIncrement() {
	c.age++
}

// Display writes "Age : <age>" followed by a newline.
func (c *Counter) Display(w io.Writer) error {
	_, err := io.WriteString(w, "Age : "+strconv.Itoa(c.age)+"\n")
	return err
}
