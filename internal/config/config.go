// Package config holds the demonstration inputs for every example.
//
// Inputs start from the literal values of the original programs (Default), can be
// replaced from a YAML file (Load) and finally overridden from OOP_* environment
// variables (LoadFromEnv).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a config file cannot be decoded.
var ErrInvalidConfig = errors.New("config: invalid config")

// Mobile is the input of the encapsulation demo.
type Mobile struct {
	Name  string  `yaml:"name"`
	Model int     `yaml:"model"`
	Price float32 `yaml:"price"`
}

// Car is the input of the initializer-list demo.
type Car struct {
	Year  int    `yaml:"year"`
	Name  string `yaml:"name"`
	Model string `yaml:"model"`
}

// Rectangle is the input of the friend-function demo.
type Rectangle struct {
	Length  int `yaml:"length"`
	Breadth int `yaml:"breadth"`
}

// Complex is one operand of the binary operator demo.
type Complex struct {
	Real int `yaml:"real"`
	Img  int `yaml:"img"`
}

// Operands are the two sides of the binary operator demo.
type Operands struct {
	Left  Complex `yaml:"left"`
	Right Complex `yaml:"right"`
}

// Counters are the starting ages of the two counters in the unary operator demo.
// First receives one pre-increment; Second receives a pre- and a post-increment.
type Counters struct {
	First  int `yaml:"first"`
	Second int `yaml:"second"`
}

// Inputs is the full set of values the demos are run with.
type Inputs struct {
	Mobile    Mobile    `yaml:"mobile"`
	Car       Car       `yaml:"car"`
	Rectangle Rectangle `yaml:"rectangle"`
	Complex   Operands  `yaml:"complex"`
	Counters  Counters  `yaml:"counters"`
}

// Default returns the inputs used by the original example programs.
func Default() Inputs {
	return Inputs{
		Mobile:    Mobile{Name: "OnePlus", Model: 11, Price: 425000.00},
		Car:       Car{Year: 1998, Name: "Audi", Model: "A2"},
		Rectangle: Rectangle{Length: 5, Breadth: 5},
		Complex: Operands{
			Left:  Complex{Real: 4, Img: 1},
			Right: Complex{Real: 5, Img: 42},
		},
		Counters: Counters{First: 0, Second: 15},
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
//
// Sections missing from the file keep their default values. Unknown keys are rejected
// so that typos do not silently fall back to defaults. Values are not range checked:
// a price too large for float32 becomes +Inf, the same as in LoadFromEnv.
func Load(path string) (Inputs, error) {
	in := Default()
	if strings.TrimSpace(path) == "" {
		return in, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Inputs{}, err
	}
	return Decode(bytes.NewReader(b), in)
}

// Decode reads YAML from r on top of base.
func Decode(r io.Reader, base Inputs) (Inputs, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	in := base
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return Inputs{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return in, nil
}

// LoadFromEnv applies OOP_* environment overrides to base.
//
// Malformed numbers are ignored and the base value is kept. A price too large for
// float32 is not malformed and becomes ±Inf, matching Load.
func LoadFromEnv(base Inputs) Inputs {
	in := base

	in.Mobile.Name = getenv("OOP_MOBILE_NAME", in.Mobile.Name)
	in.Mobile.Model = getenvInt("OOP_MOBILE_MODEL", in.Mobile.Model)
	in.Mobile.Price = getenvFloat32("OOP_MOBILE_PRICE", in.Mobile.Price)

	in.Car.Year = getenvInt("OOP_CAR_YEAR", in.Car.Year)
	in.Car.Name = getenv("OOP_CAR_NAME", in.Car.Name)
	in.Car.Model = getenv("OOP_CAR_MODEL", in.Car.Model)

	in.Rectangle.Length = getenvInt("OOP_RECTANGLE_LENGTH", in.Rectangle.Length)
	in.Rectangle.Breadth = getenvInt("OOP_RECTANGLE_BREADTH", in.Rectangle.Breadth)

	in.Complex.Left.Real = getenvInt("OOP_COMPLEX_LEFT_REAL", in.Complex.Left.Real)
	in.Complex.Left.Img = getenvInt("OOP_COMPLEX_LEFT_IMG", in.Complex.Left.Img)
	in.Complex.Right.Real = getenvInt("OOP_COMPLEX_RIGHT_REAL", in.Complex.Right.Real)
	in.Complex.Right.Img = getenvInt("OOP_COMPLEX_RIGHT_IMG", in.Complex.Right.Img)

	in.Counters.First = getenvInt("OOP_COUNTER_FIRST", in.Counters.First)
	in.Counters.Second = getenvInt("OOP_COUNTER_SECOND", in.Counters.Second)

	return in
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvFloat32(k string, def float32) float32 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	return float32(f)
}
