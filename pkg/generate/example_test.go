package generate_test

import (
	"fmt"

	"github.com/matzehuels/cliquebench/pkg/generate"
)

func ExampleGenerator_PlantedClique() {
	gen := generate.New(42)
	g, clique, err := gen.PlantedClique(20, 5, 0)
	if err != nil {
		panic(err)
	}

	fmt.Println("Clique size:", len(clique))
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Complete:", g.IsClique(clique))
	// Output:
	// Clique size: 5
	// Edges: 10
	// Complete: true
}

func ExampleHardSweep() {
	for _, c := range generate.HardSweep(20, 60, 20, 0.7) {
		fmt.Println(c.Name, c.Nodes, c.K)
	}
	// Output:
	// hard_20 20 5
	// hard_40 40 6
	// hard_60 60 9
}
