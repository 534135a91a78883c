// SPDX-License-Identifier: MIT

package balance

// Equation is a balanced reaction.
//
// Reactants and Products are sorted alphabetically. ReactantCoefficients and
// ProductCoefficients align with them position by position; Coefficients is
// their concatenation (reactants first). All coefficients are positive and
// share no common factor greater than 1.
type Equation struct {
	Reactants            []string `json:"reactants"`
	Products             []string `json:"products"`
	ReactantCoefficients []int    `json:"reactant_coefficients"`
	ProductCoefficients  []int    `json:"product_coefficients"`
	Coefficients         []int    `json:"coefficients"`
}

// Species returns reactants followed by products, the column order of the
// stoichiometric matrix.
func (e *Equation) Species() []string {
	out := make([]string, 0, len(e.Reactants)+len(e.Products))
	out = append(out, e.Reactants...)

	return append(out, e.Products...)
}

// String renders the equation with Format.
func (e *Equation) String() string {
	return Format(e)
}
