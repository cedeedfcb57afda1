package search_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/search"
	"github.com/katalvlaran/subway/station"
)

// ExampleSearch finds a route across a transfer station.
//
//	L1:  A ─ B ─ C
//	L2:        C ─ D ─ E
func ExampleSearch() {
	lines := station.NewLines()
	_ = lines.Add("L1",
		station.Station{Name: "A", Lat: 0, Lng: 0},
		station.Station{Name: "B", Lat: 0, Lng: 0.01},
		station.Station{Name: "C", Lat: 0, Lng: 0.02},
	)
	_ = lines.Add("L2",
		station.Station{Name: "C", Lat: 0, Lng: 0.02},
		station.Station{Name: "D", Lat: 0.01, Lng: 0.02},
		station.Station{Name: "E", Lat: 0.02, Lng: 0.02},
	)
	g, dir := network.Build(lines)

	res, err := search.Run(g, "A", "E", search.WithDirectory(dir))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Printf("%.2f km\n", res.Cost)

	_, err = search.Search(g, "A", "Z", search.WithDirectory(dir))
	fmt.Println(errors.Is(err, search.ErrNoPathFound))
	// Output:
	// [A B C D E]
	// 4.45 km
	// true
}
