package parser_test

import (
	"fmt"

	"github.com/katalvlaran/cld/loops"
	"github.com/katalvlaran/cld/parser"
)

// ExampleParse parses two overlapping descriptions, merges them and lists the loops.
func ExampleParse() {
	first, err := parser.Parse(`
// producer loop
Profit (PF) -> Ad revenue (AR)
AR -> Staff growth (SG)
SG -> Sales effort (SE)
SE o-> PF
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	second, err := parser.Parse(`
AR -> Spending (SI)
SI o-> PF // short term
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	first.Concat(second)
	found, _ := loops.Find(first)
	fmt.Println("nodes:", first.Len())
	for _, l := range found {
		fmt.Println(l.Name, l.Polarity, l.Signature())
	}

	// Output:
	// nodes: 5
	// B1 balancing AR,SI,PF
	// B2 balancing AR,SG,SE,PF
}
