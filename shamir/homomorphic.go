//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package shamir

import (
	"github.com/markkurossi/mpccore/field"
	"github.com/markkurossi/mpccore/mpcerr"
)

// AddShares combines two shares at the same x-coordinate into a share
// of the sum of their secrets, with no communication.
func AddShares(a, b Share) (Share, error) {
	if a.X != b.X {
		return Share{}, mpcerr.New(mpcerr.InvalidSecretShare,
			"mismatched x-coordinates")
	}
	return Share{X: a.X, Y: field.Add(a.Y, b.Y)}, nil
}

// SubShares combines two shares at the same x-coordinate into a share
// of the difference of their secrets.
func SubShares(a, b Share) (Share, error) {
	if a.X != b.X {
		return Share{}, mpcerr.New(mpcerr.InvalidSecretShare,
			"mismatched x-coordinates")
	}
	return Share{X: a.X, Y: field.Sub(a.Y, b.Y)}, nil
}

// ScalarMul scales a share's secret by the public constant k.
func ScalarMul(s Share, k field.Elt) Share {
	return Share{X: s.X, Y: field.Mul(s.Y, k)}
}
