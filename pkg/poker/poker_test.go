package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Full house", FullHouse.String())
	assert.Equal(t, "full_house", FullHouse.ID())
	assert.PanicsWithValue(t, "unknown kind: -1", func() {
		_ = Kind(-1).String()
	})
	assert.PanicsWithValue(t, "unknown kind: 0", func() {
		_ = Kind(0).ID()
	})
}

func TestKind_baseScores(t *testing.T) {
	a := assert.New(t)
	a.Len(Kinds, 10)
	for i, kind := range Kinds {
		a.Equal(i+1, int(kind))
	}

	b, err := json.Marshal(TwoPair)
	a.NoError(err)
	a.Equal(`"two_pair"`, string(b))
}
