package mapslicehelp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func TestOrderedMapKeys(t *testing.T) {
	m := orderedmap.New[string, int]()
	assert.Equal(t, []string{}, OrderedMapKeys(m))

	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mu", 3)
	m.Set("zeta", 4)
	assert.Equal(t, []string{"zeta", "alpha", "mu"}, OrderedMapKeys(m))

	m.Delete("alpha")
	assert.Equal(t, []string{"zeta", "mu"}, OrderedMapKeys(m))
}
