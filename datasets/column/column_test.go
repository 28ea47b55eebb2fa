package column

import "math/rand/v2"
import "testing"

import "github.com/stretchr/testify/assert"

func TestColumn(t *testing.T) {
	for _, s := range Test(3, 1) {
		assert.Equal(t, s.Features[1], s.Label)
	}
	for _, s := range Train(50, 3, 2, 0, rand.New(rand.NewPCG(1, 1))) {
		assert.Equal(t, s.Features[2], s.Label)
	}
	assert.False(t, Label(5)([]bool{true, true}))
}
