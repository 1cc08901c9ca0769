package oop

import (
	"io"
	"strconv"
)

// Rectangle keeps its dimensions private and exposes no accessor.
//
// Area is the one function granted read access to length and breadth. Code outside
// this package cannot observe them.
type Rectangle struct {
	length  int
	breadth int
}

// NewRectangle constructs a Rectangle from its two dimensions.
func NewRectangle(length, breadth int) Rectangle {
	return Rectangle{length: length, breadth: breadth}
}

// Area writes "AREA OF THE RECTANGLE <length*breadth>" without a trailing newline.
func Area(w io.Writer, r Rectangle) error {
	_, err := io.WriteString(w, "AREA OF THE RECTANGLE "+strconv.Itoa(r.length*r.breadth))
	return err
}
