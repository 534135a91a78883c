// SPDX-License-Identifier: MIT

// Package shell implements the interactive lvchem menu: balance an equation,
// compute a molar mass, or evaluate a concentration. Invalid input never
// ends a session; the current prompt is simply repeated.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/cache"
	"github.com/katalvlaran/lvchem/molar"
)

// Messages printed on invalid input.
const (
	MsgInvalidReaction = "Invalid chemical reaction!"
	MsgInvalidFormula  = "Invalid chemical formula!"
	MsgInvalidData     = "Enter valid data!"
	MsgInvalidChoice   = "Invalid choice!"
)

// endOfList terminates a reactant or product list.
const endOfList = "*"

const menuMarkdown = `**What would you like to calculate?**

**Chemical equations**

- Balance a chemical equation ------------ F

**Molar mass**

- Calculate a compound's molar mass ------ G

**Concentration**

- Evaluate the concentration of solute --- H

Type ` + "`exit`" + ` to quit.
`

// Shell is one interactive session.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	term    *termenv.Output
	render  func(string) (string, error)
	table   *molar.Table
	cache   cache.Cache
	balOpts []balance.Option
}

// Option configures a Shell.
type Option func(*Shell)

// WithRenderer renders the menu markdown, typically with glamour. Without
// one the menu is printed as plain text.
func WithRenderer(r func(string) (string, error)) Option {
	return func(s *Shell) { s.render = r }
}

// WithCache memoizes balance results across the session.
func WithCache(c cache.Cache) Option {
	return func(s *Shell) { s.cache = c }
}

// WithBalanceOptions forwards options to every balance call.
func WithBalanceOptions(opts ...balance.Option) Option {
	return func(s *Shell) { s.balOpts = append(s.balOpts, opts...) }
}

// New creates a session reading in and writing out. Bold output is used
// only when out is a terminal.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		term:  termenv.NewOutput(out),
		table: molar.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run shows the menu until the user types "exit", input ends, or ctx is
// cancelled. End of input is not an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		choice, err := s.prompt("Make your choice: ")
		if err != nil {
			return eofIsNil(err)
		}

		switch strings.ToUpper(choice) {
		case "F":
			err = s.balanceFlow(ctx)
		case "G":
			err = s.massFlow()
		case "H":
			err = s.concentrationFlow()
		case "EXIT", "QUIT":
			s.println("Bye!")

			return nil
		default:
			s.bold(MsgInvalidChoice)
		}
		if err != nil {
			return eofIsNil(err)
		}
	}
}

func (s *Shell) balanceFlow(ctx context.Context) error {
	for {
		s.bold("\nPlease enter your chemical reaction.")
		reactants, err := s.readList("Enter a reactant (type '*' when finished): ")
		if err != nil {
			return err
		}
		products, err := s.readList("Enter a product (type '*' when finished): ")
		if err != nil {
			return err
		}

		eq, _, err := cache.Balance(ctx, s.cache, reactants, products, s.balOpts...)
		if err != nil {
			s.bold(MsgInvalidReaction)

			continue
		}
		s.bold("\nFind hereafter the balanced chemical equation:")
		s.println(balance.Format(eq))

		return nil
	}
}

func (s *Shell) massFlow() error {
	for {
		f, err := s.prompt("Enter the chemical formula: ")
		if err != nil {
			return err
		}
		m, err := s.table.Mass(f)
		if err != nil {
			s.bold(MsgInvalidFormula)

			continue
		}
		s.bold("\nThe molar mass of this compound equals")
		s.println(fmt.Sprintf("➢ M = %s g/mol", round3(m)))

		return nil
	}
}

func (s *Shell) concentrationFlow() error {
	for {
		s.bold("\nFrom which data would you like to evaluate the solution's concentration?")
		s.println("∘ moles [mol] and volume [L] --- 1")
		s.println("∘ mass [g] and volume [L] ------ 2")
		s.println("∘ dilution --------------------- 3")
		mode, err := s.prompt("Make your choice (1/2/3): ")
		if err != nil {
			return err
		}

		var c float64
		switch mode {
		case "1":
			var v []float64
			if v, err = s.readFloats("∘ n [mol] = ", "∘ V [L] = "); err == nil {
				c, err = molar.FromMoles(v[0], v[1])
			}
		case "2":
			var f string
			if f, err = s.prompt("What compound is the solute? Enter the chemical formula: "); err != nil {
				return err
			}
			var v []float64
			if v, err = s.readFloats("∘ m [g] = ", "∘ V [L] = "); err == nil {
				c, err = s.table.FromMass(f, v[0], v[1])
			}
		case "3":
			var v []float64
			if v, err = s.readFloats("∘ ci [mol/L] = ", "∘ Vi [L] = ", "∘ Vf [L] = "); err == nil {
				c, err = molar.Dilute(v[0], v[1], v[2])
			}
		default:
			s.bold(MsgInvalidChoice)

			continue
		}
		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			s.bold(MsgInvalidData)

			continue
		}
		s.bold("\nThe concentration of this solution equals")
		s.println(fmt.Sprintf("➢ c = %s mol/L", round3(c)))

		return nil
	}
}

// readList collects lines until "*".
func (s *Shell) readList(label string) ([]string, error) {
	var out []string
	for {
		line, err := s.prompt(label)
		if err != nil {
			return nil, err
		}
		if line == endOfList {
			return out, nil
		}
		out = append(out, line)
	}
}

// readFloats prompts once per label. A parse failure is reported as
// strconv's error after all labels are consumed up to the failing one.
func (s *Shell) readFloats(labels ...string) ([]float64, error) {
	out := make([]float64, len(labels))
	for i, l := range labels {
		line, err := s.prompt(l)
		if err != nil {
			return nil, err
		}
		if out[i], err = strconv.ParseFloat(line, 64); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) printMenu() {
	if s.render != nil {
		if md, err := s.render(menuMarkdown); err == nil {
			fmt.Fprint(s.out, md)

			return
		}
	}
	s.bold("\nWhat would you like to calculate?")
	s.bold("Chemical equations")
	s.println("∘ Balance a chemical equation ------------ F")
	s.bold("Molar mass")
	s.println("∘ Calculate a compound's molar mass ------ G")
	s.bold("Concentration")
	s.println("∘ Evaluate the concentration of solute --- H")
	s.println("Type 'exit' to quit.")
}

func (s *Shell) bold(msg string) {
	fmt.Fprintln(s.out, s.term.String(msg).Bold().String())
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func round3(x float64) string {
	return strconv.FormatFloat(math.Round(x*1000)/1000, 'f', -1, 64)
}

func eofIsNil(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
