// Package xor implements the XOR dataset: the label is feature 0 xor feature 1,
// remaining features are distractors
package xor

import "math/rand/v2"

import "github.com/neurlang/tsetlin/datasets"

// Label is feature 0 xor feature 1
func Label(features []bool) bool {
	if len(features) < 2 {
		return false
	}
	return features[0] != features[1]
}

// Train returns count random samples over featureCount features, label flipped with probability noise
func Train(count, featureCount int, noise float64, r *rand.Rand) datasets.Dataset {
	return datasets.Random(count, featureCount, Label, noise, r)
}

// Test returns every input over featureCount features with its noise-free label
func Test(featureCount int) datasets.Dataset {
	return datasets.Exhaustive(featureCount, Label)
}
