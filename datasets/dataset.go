// Package datasets implements boolean datasets for training a Tsetlin machine
package datasets

import "math/rand/v2"

// Sample is one boolean feature vector with its label
type Sample struct {
	Features []bool
	Label    bool
}

// Dataset is a list of samples
type Dataset []Sample

// Len returns the number of samples
func (d Dataset) Len() int {
	return len(d)
}

// Shuffle shuffles the samples in place
func (d Dataset) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
}

// SplittedDataset holds the false samples at 0 and the true samples at 1
type SplittedDataset [2]Dataset

// Split splits dataset into a false set and a true set
func (d Dataset) Split() (o SplittedDataset) {
	for _, s := range d {
		if s.Label {
			o[1] = append(o[1], s)
		} else {
			o[0] = append(o[0], s)
		}
	}
	return
}

// Join concatenates the false set and the true set
func (d SplittedDataset) Join() Dataset {
	var o = make(Dataset, 0, len(d[0])+len(d[1]))
	o = append(o, d[0]...)
	return append(o, d[1]...)
}

// BalanceDataset fills the smaller set with random samples drawn from itself
// until it matches the bigger set. An empty set stays empty.
func BalanceDataset(d SplittedDataset, r *rand.Rand) SplittedDataset {
	for i := range d {
		other := d[1-i]
		small := len(d[i])
		if small == 0 {
			continue
		}
		for len(d[i]) < len(other) {
			d[i] = append(d[i], d[i][r.IntN(small)])
		}
	}
	return d
}

// Exhaustive returns all 2^featureCount inputs labelled by label
func Exhaustive(featureCount int, label func(features []bool) bool) (d Dataset) {
	for n := 0; n < 1<<featureCount; n++ {
		var features = make([]bool, featureCount)
		for j := range features {
			features[j] = (n>>j)&1 == 1
		}
		d = append(d, Sample{Features: features, Label: label(features)})
	}
	return
}

// Random returns count uniform random inputs labelled by label. Each label is
// flipped with probability noise.
func Random(count, featureCount int, label func(features []bool) bool, noise float64, r *rand.Rand) (d Dataset) {
	d = make(Dataset, 0, count)
	for i := 0; i < count; i++ {
		var features = make([]bool, featureCount)
		for j := range features {
			features[j] = r.IntN(2) == 1
		}
		l := label(features)
		if noise > 0 && r.Float64() < noise {
			l = !l
		}
		d = append(d, Sample{Features: features, Label: l})
	}
	return
}
