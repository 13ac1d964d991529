// False-positive estimation and capacity math.
//
// Two distinct questions are answered here and deliberately kept apart:
// EstimateFalsePositives reads the filter's CURRENT fill ratio (an
// empirical measure of the bits actually set), while the free functions
// predict behavior from an EXPECTED item count before any item is added.
package bloom

import "math"

// EstimateFalsePositives returns the chance, as a percentage, that a
// membership query for an absent item answers true, based on the current
// fill ratio: (setBits/size)^k * 100. It reflects the bits actually set,
// not the number of items inserted.
func (f *Filter) EstimateFalsePositives() float64 {
	ratio := float64(f.vector.TotalSetBits()) / float64(f.size)
	return math.Pow(ratio, float64(f.k)) * 100
}

// ApproximateItems estimates how many distinct items have been added,
// inverted from the expected fill ratio: n ≈ -(m/k) * ln(1 - X/m) for X
// set bits. A full filter has no finite estimate; MaxInt is returned.
func (f *Filter) ApproximateItems() int {
	set := f.vector.TotalSetBits()
	if set == 0 {
		return 0
	}
	if set == f.size {
		return math.MaxInt
	}
	m := float64(f.size)
	n := -(m / float64(f.k)) * math.Log(1-float64(set)/m)
	return int(math.Round(n))
}

// EstimateFalsePositiveProbability predicts the false-positive rate of a
// filter of sizeInBits bits with k hash positions after items insertions,
// as a fraction in [0,1]: (1 - e^(-k/(m/n)))^k.
func EstimateFalsePositiveProbability(sizeInBits, k, items int) float64 {
	m := float64(sizeInBits)
	n := float64(items)
	return math.Pow(1-math.Exp(-float64(k)/(m/n)), float64(k))
}

// EstimateMaxCapacity returns the largest number of items a filter of
// sizeInBits bits with k hash positions can hold while keeping the
// false-positive probability at or below maxFalsePositives. It inverts
// EstimateFalsePositiveProbability, solving for the item count.
func EstimateMaxCapacity(sizeInBits, k int, maxFalsePositives float64) int {
	m := float64(sizeInBits)
	kf := float64(k)
	return int(math.Ceil(m / (-kf / math.Log(1-math.Exp(math.Log(maxFalsePositives)/kf)))))
}

// OptimalParameters returns the smallest byte-aligned bit size and hash
// count that hold the false-positive probability at or below
// targetFalsePositives for the expected number of items:
// m = -n*ln(p)/ln(2)^2 rounded up to a byte boundary, k = round(m/n*ln 2).
func OptimalParameters(items int, targetFalsePositives float64) (sizeInBits, k int) {
	n := float64(items)
	m := -n * math.Log(targetFalsePositives) / (math.Ln2 * math.Ln2)
	sizeInBits = int(math.Ceil(m/8)) * 8
	k = int(math.Round(float64(sizeInBits) / n * math.Ln2))
	if k < 1 {
		k = 1
	}
	return sizeInBits, k
}
