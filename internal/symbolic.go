package internal

import "math/big"

// The mesh is bootstrapped from a triangle over three far vertices so that
// every real point is strictly interior when it is inserted, and the outer
// boundary never needs special cases in the walk or the flips. Rather than
// parking the far vertices at "large enough" finite coordinates (no finite
// choice survives adversarially flat circumcircles), each far coordinate is
// a monomial in a scale parameter that is taken to infinity:
//
//	FarA = ( t,    t^2)   high up, drifting right
//	FarB = (-t^4, -t^3)   far left, drifting down
//	FarC = ( t^5, -t^6)   low down, drifting right
//
// For any real points, each predicate determinant then becomes a polynomial
// in t with exactly computable big.Rat coefficients, and its sign for all
// sufficiently large t is the sign of the leading nonzero coefficient. This
// is the limit of a genuine finite configuration, so every identity the
// algorithm relies on (orientation antisymmetry, in-circle/orientation
// consistency, flip termination) holds with no per-case rules.
//
// The six degrees are pairwise distinct on purpose: an orientation test of
// two distinct real points against a far vertex has +/-(bx-ax) and
// +/-(by-ay) as its two leading coefficients, which cannot both vanish, so
// no real point is ever collinear with a far vertex. The far triangle is in
// general position by construction.

// farCoords[k] describes far vertex k as (xSign*t^xDeg, ySign*t^yDeg).
var farCoords = [3]struct {
	xDeg, yDeg   int
	xSign, ySign int64
}{
	{1, 2, 1, 1},
	{4, 3, -1, -1},
	{5, 6, 1, -1},
}

// poly is a polynomial in the scale parameter; the coefficient of t^i is
// held at index i. Slices are kept at exactly the arithmetic result length;
// trailing zero coefficients are fine.
type poly []*big.Rat

func constPoly(x float64) poly {
	return poly{rat(x)}
}

func monomial(deg int, sign int64) poly {
	p := zeroPoly(deg + 1)
	p[deg] = new(big.Rat).SetInt64(sign)
	return p
}

func zeroPoly(n int) poly {
	p := make(poly, n)
	for i := range p {
		p[i] = new(big.Rat)
	}
	return p
}

func (p poly) add(q poly) poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := zeroPoly(n)
	for i := range p {
		out[i].Add(out[i], p[i])
	}
	for i := range q {
		out[i].Add(out[i], q[i])
	}
	return out
}

func (p poly) sub(q poly) poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := zeroPoly(n)
	for i := range p {
		out[i].Add(out[i], p[i])
	}
	for i := range q {
		out[i].Sub(out[i], q[i])
	}
	return out
}

func (p poly) mul(q poly) poly {
	if len(p) == 0 || len(q) == 0 {
		return poly{}
	}
	out := zeroPoly(len(p) + len(q) - 1)
	term := new(big.Rat)
	for i := range p {
		if p[i].Sign() == 0 {
			continue
		}
		for j := range q {
			if q[j].Sign() == 0 {
				continue
			}
			term.Mul(p[i], q[j])
			out[i+j].Add(out[i+j], term)
		}
	}
	return out
}

// sign is the sign of the polynomial for all sufficiently large t: the sign
// of the leading nonzero coefficient, or zero for the zero polynomial.
func (p poly) sign() int {
	for i := len(p) - 1; i >= 0; i-- {
		if s := p[i].Sign(); s != 0 {
			return s
		}
	}
	return 0
}

// symPoint is a point whose coordinates are polynomials in the scale
// parameter. Real points are degree-zero; far vertices are monomials.
type symPoint struct {
	x, y poly
}

func realSymPoint(p Point) symPoint {
	return symPoint{constPoly(p.X), constPoly(p.Y)}
}

// farSymPoint returns the symbolic position of far vertex k in 0..2.
func farSymPoint(k int) symPoint {
	c := farCoords[k]
	return symPoint{monomial(c.xDeg, c.xSign), monomial(c.yDeg, c.ySign)}
}

func symOrientation(a, b, c symPoint) Direction {
	left := b.x.sub(a.x).mul(c.y.sub(a.y))
	right := b.y.sub(a.y).mul(c.x.sub(a.x))
	return Direction(left.sub(right).sign())
}

func symInCircle(a, b, c, q symPoint) CirclePosition {
	row := func(p symPoint) [3]poly {
		dx := p.x.sub(q.x)
		dy := p.y.sub(q.y)
		return [3]poly{dx, dy, dx.mul(dx).add(dy.mul(dy))}
	}
	ra, rb, rc := row(a), row(b), row(c)

	minor := func(p, q, r, s poly) poly {
		return p.mul(s).sub(q.mul(r))
	}
	det := ra[0].mul(minor(rb[1], rb[2], rc[1], rc[2]))
	det = det.sub(ra[1].mul(minor(rb[0], rb[2], rc[0], rc[2])))
	det = det.add(ra[2].mul(minor(rb[0], rb[1], rc[0], rc[1])))
	return CirclePosition(det.sign())
}
