// Copyright ©2026 The clifford Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import "fmt"

// config accumulates the named parameters New accepts. It is built up
// by Option functions the way
// CWBudde-algo-dsp's MeterOption/ApplyMeterOptions builds a
// MeterConfig: a defaulted zero value mutated in place by each Option.
type config struct {
	prefix string
	base   int

	p, q, r    int
	pm, qm, rm Scalar
	pqr        [3]rune // permutation of 'p', 'q', 'r'

	md []Scalar // explicit metric diagonal; overrides p/q/r if non-nil

	mm   []MultiVector // non-orthonormal metric multivectors
	mmga *Algebra       // algebra used to carry out the mm eigendecomposition
}

func defaultConfig() config {
	return config{
		prefix: "e",
		base:   0,
		pm:     ratOne,
		qm:     ratMinusOne,
		rm:     ratZero,
		pqr:    [3]rune{'p', 'q', 'r'},
	}
}

// Option mutates a config. Each named construction parameter is one
// Option constructor.
type Option func(*config)

// WithPrefix sets the label prefix for basis blades (default "e").
func WithPrefix(prefix string) Option {
	return func(c *config) { c.prefix = prefix }
}

// WithBase sets the starting index used in basis labels (default 0).
func WithBase(base int) Option {
	return func(c *config) { c.base = base }
}

// WithSignature sets the counts of +1, -1 and 0 diagonal metric
// entries.
func WithSignature(p, q, r int) Option {
	return func(c *config) { c.p, c.q, c.r = p, q, r }
}

// WithSignatureValues overrides the signed values materialized for the
// p, q and r blocks of the diagonal (defaults +1, -1, 0).
func WithSignatureValues(pm, qm, rm Scalar) Option {
	return func(c *config) { c.pm, c.qm, c.rm = pm, qm, rm }
}

// WithPQROrder controls the order the p/q/r blocks appear on the
// diagonal. order must be a permutation of {'p','q','r'}.
func WithPQROrder(order [3]rune) Option {
	return func(c *config) { c.pqr = order }
}

// WithMetricDiagonal supplies an explicit metric diagonal, overriding
// any p/q/r derivation.
func WithMetricDiagonal(md []Scalar) Option {
	return func(c *config) { c.md = md }
}

// WithNonOrthogonalMetric supplies a set of non-orthogonal metric
// multivectors; New will eigendecompose them (via mmga, or a fresh
// orthonormal algebra of the same dimension if mmga is omitted) to
// derive a diagonal metric.
func WithNonOrthogonalMetric(mm []MultiVector, mmga *Algebra) Option {
	return func(c *config) {
		c.mm = mm
		c.mmga = mmga
	}
}

// New builds an Algebra from the supplied options. It panics if the
// signature parameters are inconsistent (errBadSignature, errBadPQR) —
// these are programmer errors, not data-dependent failures, and so are
// panicked rather than returned.
func New(opts ...Option) *Algebra {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	g := &Algebra{prefix: cfg.prefix, base: cfg.base}

	if len(cfg.mm) > 0 {
		buildFromNonOrthogonalMetric(g, cfg)
	} else {
		buildFromSignature(g, cfg)
	}

	gb := generateBasis(g.prefix, g.base, g.dimension)
	g.basis = gb.byLabel
	g.basisByBitmap = gb.byBitmap
	g.basisByGrade = gb.byGrade

	buildDuals(g)
	buildSpecials(g)
	g.ops = buildOpTable(g)

	return g
}

// buildFromSignature derives the metric diagonal from p/q/r (or an
// explicit md override), honoring the pqr block ordering.
func buildFromSignature(g *Algebra, cfg config) {
	if cfg.md != nil {
		g.metric = append([]Scalar(nil), cfg.md...)
		g.dimension = len(cfg.md)
		g.p, g.q, g.r = cfg.p, cfg.q, cfg.r
		return
	}

	g.p, g.q, g.r = cfg.p, cfg.q, cfg.r
	g.dimension = cfg.p + cfg.q + cfg.r
	if g.dimension < 0 {
		panic(errBadDimension)
	}

	metric := make([]Scalar, 0, g.dimension)
	blocks := map[rune]struct {
		count int
		value Scalar
	}{
		'p': {cfg.p, cfg.pm},
		'q': {cfg.q, cfg.qm},
		'r': {cfg.r, cfg.rm},
	}
	seen := map[rune]bool{}
	for _, tag := range cfg.pqr {
		blk, ok := blocks[tag]
		if !ok || seen[tag] {
			panic(errBadPQR)
		}
		seen[tag] = true
		for i := 0; i < blk.count; i++ {
			metric = append(metric, blk.value)
		}
	}
	if !seen['p'] || !seen['q'] || !seen['r'] {
		panic(errBadPQR)
	}
	g.metric = metric
}

// buildFromNonOrthogonalMetric bootstraps an orthonormal companion
// algebra (mmga, or a fresh one if the caller didn't supply one), runs
// Householder QR over the supplied metric multivectors in that
// companion space, and uses the resulting R diagonal as this algebra's
// metric.
func buildFromNonOrthogonalMetric(g *Algebra, cfg config) {
	d := len(cfg.mm)
	mmga := cfg.mmga
	if mmga == nil {
		mmga = New(WithPrefix(cfg.prefix), WithBase(cfg.base), WithSignature(d, 0, 0))
	}
	if mmga.dimension != d {
		panic(fmt.Sprintf("%s: mmga dimension %d does not match %d metric multivectors", errBadSignature, mmga.dimension, d))
	}

	var house Householder
	house.Factorize(mmga, cfg.mm)
	r := house.RTo()
	q := house.QTo()

	diag := eigenDiagonal(r)

	g.dimension = d
	g.metric = diag
	g.metricMVs = append([]MultiVector(nil), cfg.mm...)
	g.mmga = mmga
	g.eigenvalues = diag
	g.eigenvectors = q
}
