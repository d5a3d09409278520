package routing_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sproute/routing"
	"github.com/katalvlaran/sproute/topology"
)

// ExampleEngine_Routes prints the forwarding table for switch 1 after a
// topology change.
func ExampleEngine_Routes() {
	e := routing.NewEngine()
	snap := topology.Snapshot{
		Switches: []topology.SwitchID{1, 2, 3, 4},
		Links:    []topology.Link{{Src: 1, Dst: 2}, {Src: 2, Dst: 3}, {Src: 2, Dst: 1}},
	}
	if _, err := e.Recompute(context.Background(), snap, 1); err != nil {
		fmt.Println("error:", err)
		return
	}

	routes, _ := e.Routes()
	for _, r := range routes {
		if !r.Reachable {
			fmt.Printf("%d unreachable\n", uint64(r.Dst))
			continue
		}
		fmt.Printf("%d via %s (%d hops)\n", uint64(r.Dst), r.NextHop, r.Distance)
	}
	// Output:
	// 2 via 1→2 (1 hops)
	// 3 via 1→2 (2 hops)
	// 4 unreachable
}
