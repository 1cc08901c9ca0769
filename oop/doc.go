// Package oop provides small value objects that demonstrate object-oriented
// mechanics expressed the Go way.
//
// Every type follows the same shape:
//
//   - State lives in unexported fields and is set once by a New* constructor.
//   - There are no setters. Behavior is exposed through one report method.
//   - Output goes to an io.Writer and the writer's error is returned unchanged.
//
// The variations:
//
//   - Encapsulation: Mobile and Car expose a single Display method.
//   - Granted access: Area is the only function that reads a Rectangle's dimensions.
//     Package scope plays the role of a friend declaration.
//   - Dynamic dispatch: Warrior and Mage embed Character and override Attack; callers
//     hold an Attacker and always observe the concrete variant.
//   - Operators: Complex.Plus returns a new value and leaves both operands untouched;
//     Counter.PreIncrement and Counter.PostIncrement mutate the counter in place.
//
// Inputs are never validated. Negative prices, zero-sized rectangles and empty names
// are accepted and reported as given.
package oop
