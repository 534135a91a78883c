// SPDX-License-Identifier: MIT

package molar

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveVolume indicates a volume ≤ 0.
	ErrNonPositiveVolume = errors.New("molar: volume must be positive")

	// ErrNegativeAmount indicates a negative amount, mass or concentration.
	ErrNegativeAmount = errors.New("molar: amount must not be negative")
)

// FromMoles returns c = n / V in mol/L for n moles of solute in V litres.
func FromMoles(n, v float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("FromMoles: n=%v: %w", n, ErrNegativeAmount)
	}
	if v <= 0 {
		return 0, fmt.Errorf("FromMoles: V=%v: %w", v, ErrNonPositiveVolume)
	}

	return n / v, nil
}

// FromMass returns c = m / (M·V) in mol/L for m grams of solute f in V litres.
func (t *Table) FromMass(f string, m, v float64) (float64, error) {
	if m < 0 {
		return 0, fmt.Errorf("FromMass: m=%v: %w", m, ErrNegativeAmount)
	}
	if v <= 0 {
		return 0, fmt.Errorf("FromMass: V=%v: %w", v, ErrNonPositiveVolume)
	}
	mm, err := t.Mass(f)
	if err != nil {
		return 0, fmt.Errorf("FromMass: %w", err)
	}

	return m / (mm * v), nil
}

// FromMass is Default().FromMass(f, m, v).
func FromMass(f string, m, v float64) (float64, error) {
	return Default().FromMass(f, m, v)
}

// Dilute returns the concentration after diluting ci mol/L from vi to vf
// litres: cf = ci·vi / vf.
func Dilute(ci, vi, vf float64) (float64, error) {
	if ci < 0 {
		return 0, fmt.Errorf("Dilute: ci=%v: %w", ci, ErrNegativeAmount)
	}
	if vi <= 0 || vf <= 0 {
		return 0, fmt.Errorf("Dilute: Vi=%v Vf=%v: %w", vi, vf, ErrNonPositiveVolume)
	}

	return ci * vi / vf, nil
}
