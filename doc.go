// Package oop collects small object-oriented mechanics expressed in idiomatic Go.
//
// The repository walks through one recurring shape, a value object with private
// state set by its constructor, and varies how behavior is exposed:
//
//   - encapsulation: a single report method (Mobile, Car)
//   - granted access: one package-level function reads private state (Rectangle, Area)
//   - dynamic dispatch: variants override a base behavior behind an interface
//     (Character, Warrior, Mage)
//   - operators: named methods replace operator overloading (Complex.Plus,
//     Counter.PreIncrement, Counter.PostIncrement)
//
// Package oop See subpackages:
//   - oop: the value objects
//   - internal/config, internal/demo, internal/logger: inputs, demo registry, logging
//   - cmd/oop: a CLI that lists and runs the demos
//   - examples/*: one runnable program per mechanic
package oop
