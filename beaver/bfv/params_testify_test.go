//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bfv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Uses testify/require rather than plain t.Fatalf, matching the
// pack's own lattigo/dbfv test idiom for the package that wires
// lattigo's own parameter validation into Params.Validate.
func TestDefaultParamsValidateWithRequire(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestParamsValidateRequiresPowerOfTwoDegree(t *testing.T) {
	p := DefaultParams()
	p.Degree = 4095
	require.Error(t, p.Validate())
}

func TestGeneratorEndToEndWithRequire(t *testing.T) {
	g, err := New(testParams(), 3, 2)
	require.NoError(t, err)

	triple, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, triple.Shares, 3)
	require.NotNil(t, triple.Original)
}
