package bellmanford

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sproute/topology"
)

// handBuilt assembles a Tree without running the search so that broken
// tables can be exercised.
func handBuilt(dist map[topology.SwitchID]int, pred map[topology.SwitchID]topology.Link, links ...topology.Link) *Tree {
	known := make(map[topology.SwitchID]struct{}, len(dist))
	for v := range dist {
		known[v] = struct{}{}
	}

	return &Tree{
		source: 1,
		g:      topology.NewDigraph(links),
		known:  known,
		dist:   dist,
		pred:   pred,
	}
}

func TestPathTo_PredecessorCycle(t *testing.T) {
	tr := handBuilt(
		map[topology.SwitchID]int{1: 0, 2: 1, 3: 2},
		map[topology.SwitchID]topology.Link{
			2: {Src: 3, Dst: 2},
			3: {Src: 2, Dst: 3},
		},
	)
	_, err := tr.PathTo(3)
	assert.ErrorIs(t, err, ErrMalformedTree)
	assert.ErrorIs(t, tr.Check(), ErrMalformedTree)
}

func TestPathTo_MissingPredecessor(t *testing.T) {
	tr := handBuilt(map[topology.SwitchID]int{1: 0, 2: 1}, map[topology.SwitchID]topology.Link{})
	_, err := tr.PathTo(2)
	assert.ErrorIs(t, err, ErrMalformedTree)
	assert.ErrorIs(t, tr.Check(), ErrMalformedTree)
}

func TestCheck_Violations(t *testing.T) {
	cases := map[string]*Tree{
		"source distance": handBuilt(map[topology.SwitchID]int{1: 1}, nil),
		"source predecessor": handBuilt(
			map[topology.SwitchID]int{1: 0},
			map[topology.SwitchID]topology.Link{1: {Src: 1, Dst: 1}},
		),
		"predecessor ends elsewhere": handBuilt(
			map[topology.SwitchID]int{1: 0, 2: 1},
			map[topology.SwitchID]topology.Link{2: {Src: 1, Dst: 3}},
		),
		"unrelaxed link": handBuilt(
			map[topology.SwitchID]int{1: 0, 2: Unreachable},
			nil,
			topology.Link{Src: 1, Dst: 2},
		),
		"distance gap": handBuilt(
			map[topology.SwitchID]int{1: 0, 2: 2},
			map[topology.SwitchID]topology.Link{2: {Src: 1, Dst: 2}},
			topology.Link{Src: 1, Dst: 2},
		),
	}
	for name, tr := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, tr.Check(), ErrMalformedTree)
		})
	}
}

func TestCheck_ValidHandBuilt(t *testing.T) {
	tr := handBuilt(
		map[topology.SwitchID]int{1: 0, 2: 1, 3: Unreachable},
		map[topology.SwitchID]topology.Link{2: {Src: 1, Dst: 2}},
		topology.Link{Src: 1, Dst: 2},
		topology.Link{Src: 3, Dst: 2},
	)
	assert.NoError(t, tr.Check())
}
