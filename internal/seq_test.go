package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefineSeq(t *testing.T) {
	assert := assert.New(t)

	seq := DefineSeq(
		map[string]string{"A": "1", "B": "2"},
		map[string]string{},
		map[string]string{"C": "3"},
	)

	assert.Equal(map[string]string{"A": "1", "B": "2", "C": "3"}, maps.Collect(seq))
}

func TestSeq2Chain_Stop(t *testing.T) {
	assert := assert.New(t)

	seq := DefineSeq(
		map[string]string{"A": "1"},
		map[string]string{"B": "2"},
	)

	count := 0
	for range seq {
		count++
		break
	}

	assert.Equal(1, count)
}
