package internal

import (
	"math"
	"math/big"
)

// Exact orientation and in-circle tests. These are the primary robustness
// requirement of the whole engine: a single inconsistent sign on a
// near-degenerate input corrupts the mesh topology, and the damage shows up
// far from the cause. The approach follows the layering used by the S2
// predicates: evaluate in float64 against a conservative rounding-error
// bound, and only when the magnitude of the determinant falls inside the
// bound, re-evaluate with exact rational arithmetic. float64 inputs convert
// to big.Rat exactly, so the slow path has no precision to tune; it is
// simply correct.

type Direction int

const (
	Clockwise        Direction = -1
	Collinear        Direction = 0
	CounterClockwise Direction = 1
)

type CirclePosition int

const (
	OutsideCircle CirclePosition = -1
	OnCircle      CirclePosition = 0
	InsideCircle  CirclePosition = 1
)

// The C++ DBL_EPSILON equivalent, as in the S2 predicates.
const dblEpsilon = 2.220446049250313e-16

// Shewchuk's a-priori error bounds for the two determinants. If the float64
// result is further from zero than the bound, its sign is trustworthy.
var (
	ccwErrBound      = (3.0 + 16.0*dblEpsilon) * dblEpsilon
	inCircleErrBound = (10.0 + 96.0*dblEpsilon) * dblEpsilon
)

// Orientation returns the turn direction of the path a -> b -> c: the sign
// of the twice-signed area of the triangle (a, b, c).
func Orientation(a, b, c Point) Direction {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	bound := ccwErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > bound {
		return CounterClockwise
	}
	if -det > bound {
		return Clockwise
	}
	return exactOrientation(a, b, c)
}

func exactOrientation(a, b, c Point) Direction {
	ax, ay := rat(a.X), rat(a.Y)
	bx, by := rat(b.X), rat(b.Y)
	cx, cy := rat(c.X), rat(c.Y)

	left := new(big.Rat).Mul(new(big.Rat).Sub(bx, ax), new(big.Rat).Sub(cy, ay))
	right := new(big.Rat).Mul(new(big.Rat).Sub(by, ay), new(big.Rat).Sub(cx, ax))
	return Direction(left.Sub(left, right).Sign())
}

// InCircle reports where q sits relative to the circumcircle of the
// counter-clockwise triangle (a, b, c). Callers must guarantee the
// orientation; passing a clockwise triple silently inverts the answer.
func InCircle(a, b, c, q Point) CirclePosition {
	adx := a.X - q.X
	ady := a.Y - q.Y
	bdx := b.X - q.X
	bdy := b.Y - q.Y
	cdx := c.X - q.X
	cdy := c.Y - q.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	aLift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	bLift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	cLift := cdx*cdx + cdy*cdy

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*aLift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*bLift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*cLift
	bound := inCircleErrBound * permanent
	if det > bound {
		return InsideCircle
	}
	if -det > bound {
		return OutsideCircle
	}
	return exactInCircle(a, b, c, q)
}

func exactInCircle(a, b, c, q Point) CirclePosition {
	rows := [3][3]*big.Rat{}
	for i, p := range [3]Point{a, b, c} {
		dx := new(big.Rat).Sub(rat(p.X), rat(q.X))
		dy := new(big.Rat).Sub(rat(p.Y), rat(q.Y))
		lift := new(big.Rat).Add(
			new(big.Rat).Mul(dx, dx),
			new(big.Rat).Mul(dy, dy),
		)
		rows[i] = [3]*big.Rat{dx, dy, lift}
	}
	return CirclePosition(det3(rows).Sign())
}

// 3x3 determinant by cofactor expansion along the first row.
func det3(m [3][3]*big.Rat) *big.Rat {
	minor := func(a, b, c, d *big.Rat) *big.Rat {
		return new(big.Rat).Sub(new(big.Rat).Mul(a, d), new(big.Rat).Mul(b, c))
	}
	det := new(big.Rat).Mul(m[0][0], minor(m[1][1], m[1][2], m[2][1], m[2][2]))
	det.Sub(det, new(big.Rat).Mul(m[0][1], minor(m[1][0], m[1][2], m[2][0], m[2][2])))
	det.Add(det, new(big.Rat).Mul(m[0][2], minor(m[1][0], m[1][1], m[2][0], m[2][1])))
	return det
}

func rat(x float64) *big.Rat {
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		// Inputs are validated to be finite before insertion, so this is an
		// engine bug, not a user error.
		fatal(ErrNumericalInconsistency, "non-finite coordinate %v reached a predicate", x)
	}
	return r
}
