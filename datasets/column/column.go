// Package column implements the Column dataset: the label is one of the input features
package column

import "math/rand/v2"

import "github.com/neurlang/tsetlin/datasets"

// Label returns the labelling function which copies feature k
func Label(k int) func([]bool) bool {
	return func(features []bool) bool {
		return k < len(features) && features[k]
	}
}

// Train returns count random samples over featureCount features, label flipped with probability noise
func Train(count, featureCount, k int, noise float64, r *rand.Rand) datasets.Dataset {
	return datasets.Random(count, featureCount, Label(k), noise, r)
}

// Test returns every input over featureCount features with its noise-free label
func Test(featureCount, k int) datasets.Dataset {
	return datasets.Exhaustive(featureCount, Label(k))
}
