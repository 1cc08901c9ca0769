package oop

import "io"

// Attacker is the polymorphic contract. Callers should hold values of this type
// rather than a concrete variant; the variant's Attack is selected at call time.
type Attacker interface {
	Attack(w io.Writer) error
}

// Character is the base variant and provides the default attack.
type Character struct{}

// Attack writes the generic attack line.
func (Character) Attack(w io.Writer) error {
	_, err := io.WriteString(w, "Character attacks in a generic way!\n")
	return err
}

// Warrior specializes Character with a sword attack.
type Warrior struct {
	Character
}

// Attack overrides Character.Attack.
func (Warrior) Attack(w io.Writer) error {
	_, err := io.WriteString(w, "Warrior swings a sword!\n")
	return err
}

// Mage specializes Character with a spell.
type Mage struct {
	Character
}

// Attack overrides Character.Attack.
func (Mage) Attack(w io.Writer) error {
	_, err := io.WriteString(w, "Mage casts a fireball!\n")
	return err
}

var (
	_ Attacker = Character{}
	_ Attacker = Warrior{}
	_ Attacker = Mage{}
)
