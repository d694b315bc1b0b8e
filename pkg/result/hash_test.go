package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_EqualResultsHashEqual(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok[int, int](42).Hash(), Ok[int, int](42).Hash())
	assert.Equal(t, Err[int, string]("bad").Hash(), Err[int, string]("bad").Hash())
}

func TestHash_DiscriminatesVariantTag(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Ok[int, int](42).Hash(), Err[int, int](42).Hash(),
		"same payload under different tags must not collide")
}

func TestHash_DiscriminatesPayload(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Ok[int, int](42).Hash(), Ok[int, int](43).Hash())
}
