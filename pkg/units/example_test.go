package units_test

import (
	"fmt"

	"github.com/matzehuels/panelize/pkg/units"
)

func ExampleParseLength() {
	mm, _ := units.ParseLength("50mm")
	cm, _ := units.ParseLength("2.5cm")
	_, err := units.ParseLength("5px")

	fmt.Println(mm)
	fmt.Println(cm)
	fmt.Println(err)
	// Output:
	// 50
	// 25
	// INVALID_LENGTH: unhandled length: "5px"
}
