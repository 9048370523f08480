package dijkstra_test

import (
	"fmt"

	"github.com/skylath/skylath/adjacency"
	"github.com/skylath/skylath/core"
	"github.com/skylath/skylath/dijkstra"
)

// ExampleFindPath demonstrates an unconstrained query on the triangle
// route network: the two-leg connection beats the direct flight.
func ExampleFindPath() {
	// 1) Build the network: a→b→c costs 2+3, the direct a→c costs 10.
	g := adjacency.NewList()
	_ = g.AddEdge("a", core.Edge{To: "b", Carrier: "airline1", Weight: 2})
	_ = g.AddEdge("b", core.Edge{To: "c", Carrier: "airline2", Weight: 3})
	_ = g.AddEdge("a", core.Edge{To: "c", Carrier: "airline1", Weight: 10})

	// 2) Query with the zero-value Constraints (no carrier filter, no
	//    stop limit).
	res, err := dijkstra.FindPath(g, "a", "c", core.Constraints{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s (%.1f)\n", res.PathString(), res.TotalWeight)
	// Output: a → b → c (5.0)
}

// ExampleFindPath_constrained shows how a hop limit reroutes the query
// onto the direct flight.
func ExampleFindPath_constrained() {
	g := adjacency.NewList()
	_ = g.AddEdge("a", core.Edge{To: "b", Carrier: "airline1", Weight: 2})
	_ = g.AddEdge("b", core.Edge{To: "c", Carrier: "airline2", Weight: 3})
	_ = g.AddEdge("a", core.Edge{To: "c", Carrier: "airline1", Weight: 10})

	res, err := dijkstra.FindPath(g, "a", "c", core.Constraints{MaxStops: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s (%.1f)\n", res.PathString(), res.TotalWeight)
	// Output: a → c (10.0)
}
