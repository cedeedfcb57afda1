package network_test

import (
	"fmt"

	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/station"
)

// ExampleBuild shows how a transfer station merges neighbors from two lines.
//
//	L1:  A ─ B
//	L2:  C ─ B ─ D
func ExampleBuild() {
	lines := station.NewLines()
	_ = lines.Add("L1", station.Station{Name: "A"}, station.Station{Name: "B"})
	_ = lines.Add("L2", station.Station{Name: "C"}, station.Station{Name: "B"}, station.Station{Name: "D"})

	g, dir := network.Build(lines)
	fmt.Println(g.Neighbors("B"))
	fmt.Println(dir.Len(), network.Transfers(lines))
	// Output:
	// [A C D]
	// 4 [B]
}
