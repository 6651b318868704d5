// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

// binKey and unKey are the dispatch tuples: binary operators key on
// [op, dependency, kindA, kindB, gradeA, gradeB]; unary operators key on
// the simpler [op, kind]. Handlers are precomputed once at algebra
// construction (New → buildOpTable) so Apply is a direct map lookup,
// not a runtime type switch.
type binKey struct {
	op             Op
	dep            Dependency
	kindA, kindB   Kind
	gradeA, gradeB GradeClass
}

type unKey struct {
	op   Op
	kind Kind
}

type binHandler func(g *Algebra, a, b Value) (Value, error)
type unHandler func(g *Algebra, a Value) (Value, error)
type naryHandler func(g *Algebra, args []Value) (Value, error)

// opTable is the algebra's precomputed operator table.
type opTable struct {
	bin  map[binKey]binHandler
	un   map[unKey]unHandler
	nary map[Op]naryHandler
}

var allKinds = [...]Kind{KindNumber, KindBlade, KindMultivector}
var allDeps = [...]Dependency{DepIndependent, DepDependent}
var allGradeClasses = [...]GradeClass{GradeScalar, GradeNonScalar, GradeAny}

// registerBinary fans a single handler out across every (dependency,
// kindA, kindB, gradeA, gradeB) combination for op: the handler's logic
// doesn't depend on which combination resolved it (it lifts its
// operands and defers to the shared primitive/derived implementation),
// but the table genuinely is keyed and looked up by the full tuple, so
// dispatch stays a resolve-then-lookup, not a hidden type switch.
func registerBinary(t *opTable, op Op, h binHandler) {
	for _, dep := range allDeps {
		for _, ka := range allKinds {
			for _, kb := range allKinds {
				for _, ga := range allGradeClasses {
					for _, gb := range allGradeClasses {
						t.bin[binKey{op: op, dep: dep, kindA: ka, kindB: kb, gradeA: ga, gradeB: gb}] = h
					}
				}
			}
		}
	}
}

func registerUnary(t *opTable, op Op, h unHandler) {
	for _, k := range allKinds {
		t.un[unKey{op: op, kind: k}] = h
	}
}

// buildOpTable constructs g's operator table.
func buildOpTable(g *Algebra) opTable {
	t := opTable{
		bin:  make(map[binKey]binHandler),
		un:   make(map[unKey]unHandler),
		nary: make(map[Op]naryHandler),
	}

	registerBinary(&t, OpGeometric, func(g *Algebra, a, b Value) (Value, error) {
		return MultiVector(Geometric(g, lift(g, a), lift(g, b))), nil
	})
	registerBinary(&t, OpWedge, func(g *Algebra, a, b Value) (Value, error) {
		return MultiVector(Wedge(g, lift(g, a), lift(g, b))), nil
	})
	registerBinary(&t, OpInterior, func(g *Algebra, a, b Value) (Value, error) {
		return MultiVector(Interior(g, lift(g, a), lift(g, b))), nil
	})
	registerBinary(&t, OpLeftContraction, func(g *Algebra, a, b Value) (Value, error) {
		return MultiVector(LeftContraction(g, lift(g, a), lift(g, b))), nil
	})
	registerBinary(&t, OpRightContraction, func(g *Algebra, a, b Value) (Value, error) {
		return MultiVector(RightContraction(g, lift(g, a), lift(g, b))), nil
	})
	registerBinary(&t, OpSymmetricInner, func(g *Algebra, a, b Value) (Value, error) {
		return MultiVector(SymmetricInnerProduct(g, lift(g, a), lift(g, b))), nil
	})
	registerBinary(&t, OpSandwich, func(g *Algebra, a, b Value) (Value, error) {
		return MultiVector(Sandwich(g, lift(g, a), lift(g, b))), nil
	})

	registerUnary(&t, OpReverse, func(g *Algebra, a Value) (Value, error) {
		return MultiVector(Reverse(lift(g, a))), nil
	})
	registerUnary(&t, OpGradeInvolution, func(g *Algebra, a Value) (Value, error) {
		return MultiVector(GradeInvolution(lift(g, a))), nil
	})
	registerUnary(&t, OpNegate, func(g *Algebra, a Value) (Value, error) {
		return MultiVector(Negate(lift(g, a))), nil
	})
	registerUnary(&t, OpDual, func(g *Algebra, a Value) (Value, error) {
		return MultiVector(Dual(g, lift(g, a))), nil
	})
	registerUnary(&t, OpHodgeDual, func(g *Algebra, a Value) (Value, error) {
		return MultiVector(HodgeDual(g, lift(g, a))), nil
	})
	registerUnary(&t, OpNormalize, func(g *Algebra, a Value) (Value, error) {
		return MultiVector(Normalize(g, lift(g, a))), nil
	})
	registerUnary(&t, OpExp, func(g *Algebra, a Value) (Value, error) {
		return MultiVector(Exp(g, lift(g, a))), nil
	})
	registerUnary(&t, OpNormSquared, func(g *Algebra, a Value) (Value, error) {
		return Number{S: NormSquared(g, lift(g, a))}, nil
	})
	registerUnary(&t, OpLength, func(g *Algebra, a Value) (Value, error) {
		return Number{S: Length(g, lift(g, a))}, nil
	})
	registerUnary(&t, OpInverse, func(g *Algebra, a Value) (Value, error) {
		inv, err := Inverse(g, lift(g, a))
		if err != nil {
			return nil, err
		}
		return MultiVector(inv), nil
	})

	t.nary[OpJoin] = func(g *Algebra, args []Value) (Value, error) {
		mvs := make([]MultiVector, len(args))
		for i, a := range args {
			mvs[i] = lift(g, a)
		}
		return MultiVector(Join(g, mvs...)), nil
	}

	return t
}

// Apply resolves and invokes an operator against its operands, the
// generic dispatch entry point a surface DSL would call through ("(op
// ga x y)"-style applications). It returns NoSuchOpError if no
// handler is registered for the resolved dispatch tuple.
//
// Variadic application with more than two operands reduces left-to-right
// using the binary handler, unless a dedicated n-ary handler is
// registered for op (currently only Join).
func (g *Algebra) Apply(op Op, args ...Value) (Value, error) {
	if h, ok := g.ops.nary[op]; ok {
		return h(g, args)
	}

	switch len(args) {
	case 0:
		return nil, &NoSuchOpError{Op: op, Args: args}
	case 1:
		key := unKey{op: op, kind: args[0].Kind()}
		h, ok := g.ops.un[key]
		if !ok {
			return nil, &NoSuchOpError{Op: op, Args: args}
		}
		return h(g, args[0])
	default:
		result := args[0]
		for _, next := range args[1:] {
			v, err := g.applyBinary(op, result, next)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil
	}
}

func (g *Algebra) applyBinary(op Op, a, b Value) (Value, error) {
	key := binKey{
		op:     op,
		dep:    operandDependency(a, b),
		kindA:  a.Kind(),
		kindB:  b.Kind(),
		gradeA: gradeClassOf(a),
		gradeB: gradeClassOf(b),
	}
	h, ok := g.ops.bin[key]
	if !ok {
		return nil, &NoSuchOpError{Op: op, Args: []Value{a, b}}
	}
	return h(g, a, b)
}

// operandDependency resolves the Dependency component of a binary
// dispatch key: only meaningful when both operands are single blades,
// independent otherwise.
func operandDependency(a, b Value) Dependency {
	ba, ok1 := a.(Blade)
	bb, ok2 := b.(Blade)
	if ok1 && ok2 {
		return dependencyOf(ba.Bitmap, bb.Bitmap)
	}
	return DepIndependent
}
