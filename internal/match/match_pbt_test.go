package match

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMatchesProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("non-empty strings match themselves", prop.ForAll(
		func(s string) bool {
			return Matches(s, s)
		},
		gen.Identifier(),
	))

	properties.Property("empty query never matches", prop.ForAll(
		func(s string) bool {
			return !Matches("", s)
		},
		gen.AnyString(),
	))

	properties.Property("empty target never matches", prop.ForAll(
		func(s string) bool {
			return !Matches(s, "")
		},
		gen.AnyString(),
	))

	properties.Property("score stays within [0,1]", prop.ForAll(
		func(a, b string) bool {
			s := Score(a, b)
			return s >= 0 && s <= 1
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
