// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/conslist"
)

// Record is a small struct element used to exercise the codecs with
// something richer than integers.
type Record struct {
	ID    int      `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Score float64  `json:"score" yaml:"score"`
}

// GenIntList creates a list holding 0..n-1 in head-to-tail order.
func GenIntList(n int) *conslist.List[int] {
	acc := conslist.New[int]()
	for i := n - 1; i >= 0; i-- {
		acc.Cons(i)
	}
	return acc
}

// GenRecordList creates a list of n records.
func GenRecordList(n int) *conslist.List[Record] {
	acc := conslist.New[Record]()
	for i := n - 1; i >= 0; i-- {
		acc.Cons(Record{
			ID:    i,
			Name:  fmt.Sprintf("record-%d", i),
			Tags:  []string{"a", "b"},
			Score: float64(i) / 3,
		})
	}
	return acc
}

// GenRecordYAML generates YAML bytes for a list of n records.
func GenRecordYAML(n int) []byte {
	data, err := yaml.Marshal(GenRecordList(n))
	if err != nil {
		panic(err)
	}
	return data
}
