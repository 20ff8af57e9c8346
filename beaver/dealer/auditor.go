//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dealer

import (
	"crypto/rand"
	"math/big"

	"github.com/markkurossi/mpccore/beaver"
	"github.com/markkurossi/mpccore/field"
)

// Auditor is an external aggregator that inspects a batch of
// dealer-generated triples for statistical and cryptographic health.
// It requires each triple's Plain (a,b,c) view, which only the dealer
// itself (or a debug build) ever holds. It replaces the teacher's
// audit_triples_stub.go, which deferred this logic with "triple
// auditing not implemented".
type Auditor struct{}

// StatisticalReport summarizes a batch's sampled (a,b) values against
// the field-expected uniform distribution.
type StatisticalReport struct {
	N            int
	MeanA, MeanB float64
	VarianceA    float64
	VarianceB    float64
	ExpectedMean float64
	ExpectedVar  float64
}

// StatisticalAudit checks the uniformity of the sampled (a,b) pairs
// across a batch: for a uniform variable on [0, p), the expected mean
// is p/2 and the expected variance is p^2/12.
func (Auditor) StatisticalAudit(triples []*beaver.Triple) StatisticalReport {
	n := len(triples)
	report := StatisticalReport{N: n}
	if n == 0 {
		return report
	}

	p := new(big.Float).SetUint64(uint64(field.Prime))
	report.ExpectedMean, _ = new(big.Float).Quo(p, big.NewFloat(2)).Float64()
	pSquared := new(big.Float).Mul(p, p)
	report.ExpectedVar, _ = new(big.Float).Quo(pSquared, big.NewFloat(12)).Float64()

	var sumA, sumB float64
	as := make([]float64, 0, n)
	bs := make([]float64, 0, n)
	for _, tr := range triples {
		if tr.Original == nil {
			continue
		}
		a := float64(tr.Original.A.Uint64())
		b := float64(tr.Original.B.Uint64())
		as = append(as, a)
		bs = append(bs, b)
		sumA += a
		sumB += b
	}
	if len(as) == 0 {
		return report
	}
	meanA := sumA / float64(len(as))
	meanB := sumB / float64(len(bs))
	report.MeanA, report.MeanB = meanA, meanB

	var varA, varB float64
	for i := range as {
		varA += (as[i] - meanA) * (as[i] - meanA)
		varB += (bs[i] - meanB) * (bs[i] - meanB)
	}
	report.VarianceA = varA / float64(len(as))
	report.VarianceB = varB / float64(len(bs))
	return report
}

// WithinTolerance reports whether a statistical report's observed mean
// and variance for both a and b fall within relTolerance (a fraction,
// e.g. 0.1 for 10%) of the field-expected values.
func (r StatisticalReport) WithinTolerance(relTolerance float64) bool {
	within := func(observed, expected float64) bool {
		if expected == 0 {
			return observed == 0
		}
		diff := observed - expected
		if diff < 0 {
			diff = -diff
		}
		return diff/expected <= relTolerance
	}
	return within(r.MeanA, r.ExpectedMean) && within(r.MeanB, r.ExpectedMean) &&
		within(r.VarianceA, r.ExpectedVar) && within(r.VarianceB, r.ExpectedVar)
}

// CryptographicReport counts verification failures across an audited
// batch.
type CryptographicReport struct {
	N        int
	Failures int
	Indices  []int
}

// CryptographicAudit iterates Verify(t) across a batch and counts
// failures, recording which indices failed.
func (Auditor) CryptographicAudit(triples []*beaver.Triple, t int) CryptographicReport {
	report := CryptographicReport{N: len(triples)}
	for i, tr := range triples {
		if !tr.Verify(t) {
			report.Failures++
			report.Indices = append(report.Indices, i)
		}
	}
	return report
}

// SampleIndices draws k distinct indices from [0,n) uniformly, for
// audits that only spot-check a random subset of a large batch rather
// than verifying every triple.
func SampleIndices(n, k int) []int {
	if k <= 0 || n <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	seen := make(map[int]bool, k)
	out := make([]int, 0, k)
	for len(out) < k {
		x, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			break
		}
		i := int(x.Int64())
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}
