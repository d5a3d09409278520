package topology

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptySnapshot indicates that a Snapshot carries no switches.
var ErrEmptySnapshot = errors.New("topology: snapshot has no switches")

// SwitchID identifies a switch (a datapath id). It has no structure beyond identity.
type SwitchID uint64

// String renders the id as a colon-separated datapath id,
// e.g. 00:00:00:00:00:00:00:2a.
func (id SwitchID) String() string {
	b := make([]byte, 0, 23)
	for shift := 56; shift >= 0; shift -= 8 {
		if shift != 56 {
			b = append(b, ':')
		}
		b = fmt.Appendf(b, "%02x", byte(uint64(id)>>uint(shift)))
	}

	return string(b)
}

// Link is a directed connection Src→Dst with an implicit weight of one hop.
// Links are values; the engine never modifies them.
type Link struct {
	// Src is the switch the link leaves from.
	Src SwitchID

	// Dst is the switch the link arrives at.
	Dst SwitchID
}

// IsLoop reports whether the link starts and ends on the same switch.
func (l Link) IsLoop() bool { return l.Src == l.Dst }

// String renders the link as "src→dst" using decimal ids.
func (l Link) String() string {
	return fmt.Sprintf("%d→%d", uint64(l.Src), uint64(l.Dst))
}

// Snapshot is the controller's view of the network at one instant.
type Snapshot struct {
	// Switches lists the currently active switches. Duplicates are tolerated.
	Switches []SwitchID

	// Links lists the currently active directed links. Parallel links are tolerated.
	Links []Link
}

// Validate reports ErrEmptySnapshot when no switches are present.
func (s Snapshot) Validate() error {
	if len(s.Switches) == 0 {
		return ErrEmptySnapshot
	}

	return nil
}

// SwitchSet returns the switches as a set.
func (s Snapshot) SwitchSet() map[SwitchID]struct{} {
	set := make(map[SwitchID]struct{}, len(s.Switches))
	for _, id := range s.Switches {
		set[id] = struct{}{}
	}

	return set
}

// Has reports whether id is one of the snapshot's switches.
// Complexity: O(V)
func (s Snapshot) Has(id SwitchID) bool {
	for _, sw := range s.Switches {
		if sw == id {
			return true
		}
	}

	return false
}

// SortIDs sorts ids ascending in place and returns it.
func SortIDs(ids []SwitchID) []SwitchID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
