package demo

import (
	"io"

	"github.com/sghaida/oop/internal/config"
	"github.com/sghaida/oop/oop"
)

// Demo names, in the order Default registers them.
const (
	Encapsulation   = "encapsulation"
	InitializerList = "initializer-list"
	FriendFunction  = "friend-function"
	VirtualFunction = "virtual-function"
	BinaryOperator  = "binary-operator"
	UnaryOperator   = "unary-operator"
)

// Default returns a registry holding every demo.
func Default() *Registry {
	return NewRegistry().
		Provide(Encapsulation, runEncapsulation).
		Provide(InitializerList, runInitializerList).
		Provide(FriendFunction, runFriendFunction).
		Provide(VirtualFunction, runVirtualFunction).
		Provide(BinaryOperator, runBinaryOperator).
		Provide(UnaryOperator, runUnaryOperator)
}

func runEncapsulation(w io.Writer, in config.Inputs) error {
	m := oop.NewMobile(in.Mobile.Name, in.Mobile.Model, in.Mobile.Price)
	return m.Display(w)
}

func runInitializerList(w io.Writer, in config.Inputs) error {
	c := oop.NewCar(in.Car.Year, in.Car.Name, in.Car.Model)
	if err := c.Display(w); err != nil {
		return err
	}
	return newline(w)
}

func runFriendFunction(w io.Writer, in config.Inputs) error {
	r := oop.NewRectangle(in.Rectangle.Length, in.Rectangle.Breadth)
	if err := oop.Area(w, r); err != nil {
		return err
	}
	return newline(w)
}

// runVirtualFunction rebinds one Attacker to each variant in turn.
func runVirtualFunction(w io.Writer, _ config.Inputs) error {
	var player oop.Attacker

	player = oop.Warrior{}
	if err := player.Attack(w); err != nil {
		return err
	}

	player = oop.Mage{}
	return player.Attack(w)
}

func runBinaryOperator(w io.Writer, in config.Inputs) error {
	c1 := oop.NewComplex(in.Complex.Left.Real, in.Complex.Left.Img)
	c2 := oop.NewComplex(in.Complex.Right.Real, in.Complex.Right.Img)

	c3 := c1.Plus(c2)
	return c3.Display(w)
}

func runUnaryOperator(w io.Writer, in config.Inputs) error {
	inc1 := oop.NewCounterAt(in.Counters.First)
	inc2 := oop.NewCounterAt(in.Counters.Second)

	inc1.PreIncrement()
	inc2.PreIncrement()
	inc2.PostIncrement()

	if err := inc1.Display(w); err != nil {
		return err
	}
	return inc2.Display(w)
}

// newline terminates demos whose report leaves the line open.
func newline(w io.Writer) error {
	_, err := io.WriteString(w, "\n")
	return err
}
