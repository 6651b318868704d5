// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gacalc is a small command-line calculator over the ga
// package: build an algebra from a p,q,r signature, parse multivector
// literals off the command line, and apply one operator to them.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/hendekagon/clifford/ga"
	"github.com/urfave/cli"
)

var signatureFlags = []cli.Flag{
	cli.IntFlag{Name: "p", Value: 3, Usage: "number of +1 metric entries"},
	cli.IntFlag{Name: "q", Value: 0, Usage: "number of -1 metric entries"},
	cli.IntFlag{Name: "r", Value: 0, Usage: "number of 0 metric entries"},
	cli.StringFlag{Name: "prefix", Value: "e", Usage: "basis label prefix"},
	cli.IntFlag{Name: "base", Value: 1, Usage: "starting index used in basis labels"},
}

func algebraFromContext(c *cli.Context) *ga.Algebra {
	return ga.New(
		ga.WithSignature(c.Int("p"), c.Int("q"), c.Int("r")),
		ga.WithPrefix(c.String("prefix")),
		ga.WithBase(c.Int("base")),
	)
}

// parseLiteral reads a multivector literal of the form "c1*label +
// c2*label + ...", e.g. "2*e1 + 3/2*e23". A bare label with no "*"
// defaults to coefficient 1.
func parseLiteral(g *ga.Algebra, s string) (ga.MultiVector, error) {
	var terms []ga.Term
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		scale, label := ga.Scalar(big.NewRat(1, 1)), part
		if i := strings.Index(part, "*"); i >= 0 {
			label = strings.TrimSpace(part[i+1:])
			r, ok := new(big.Rat).SetString(strings.TrimSpace(part[:i]))
			if !ok {
				return nil, fmt.Errorf("could not parse coefficient %q", part[:i])
			}
			scale = r
		}
		terms = append(terms, ga.Term{Scale: scale, Label: label})
	}
	return ga.NewMultiVector(g, terms...)
}

var opsByName = map[string]ga.Op{
	"geometric":       ga.OpGeometric,
	"wedge":           ga.OpWedge,
	"meet":            ga.OpWedge,
	"interior":        ga.OpInterior,
	"left":            ga.OpLeftContraction,
	"right":           ga.OpRightContraction,
	"symmetric":       ga.OpSymmetricInner,
	"join":            ga.OpJoin,
	"dual":            ga.OpDual,
	"hodgedual":       ga.OpHodgeDual,
	"sandwich":        ga.OpSandwich,
	"exp":             ga.OpExp,
	"inverse":         ga.OpInverse,
	"normalize":       ga.OpNormalize,
	"reverse":         ga.OpReverse,
	"gradeinvolution": ga.OpGradeInvolution,
	"negate":          ga.OpNegate,
	"norm2":           ga.OpNormSquared,
	"length":          ga.OpLength,
}

func applyCommand(c *cli.Context) error {
	args := c.Args()
	if len(args) < 2 {
		return cli.NewExitError("usage: gacalc apply <op> <operand>...", 1)
	}

	op, ok := opsByName[args[0]]
	if !ok {
		return cli.NewExitError(fmt.Sprintf("unknown operator %q", args[0]), 1)
	}

	g := algebraFromContext(c)
	operands := make([]ga.Value, 0, len(args)-1)
	for _, lit := range args[1:] {
		mv, err := parseLiteral(g, lit)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		operands = append(operands, mv)
	}

	result, err := g.Apply(op, operands...)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	switch v := result.(type) {
	case ga.MultiVector:
		fmt.Println(ga.Format(ga.Simplify(v)))
	case ga.Number:
		fmt.Println(v.S.RatString())
	default:
		fmt.Println(result)
	}
	return nil
}

func basisCommand(c *cli.Context) error {
	g := algebraFromContext(c)
	for _, b := range g.BladesByGrade() {
		fmt.Printf("grade %d  %-8s bitmap %b\n", b.Grade, b.Basis, b.Bitmap)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "gacalc"
	app.Usage = "evaluate geometric-algebra operators from the command line"
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "basis",
			Usage:     "list the basis blades of an algebra",
			Flags:     signatureFlags,
			ArgsUsage: " ",
			Action:    basisCommand,
		},
		{
			Name:      "apply",
			Aliases:   []string{"a"},
			Usage:     "apply an operator to one or more multivector literals",
			ArgsUsage: "op literal [literal...]",
			Flags:     signatureFlags,
			Action:    applyCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
