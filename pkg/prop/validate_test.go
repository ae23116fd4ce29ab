package prop

import (
	"testing"

	"github.com/magiconair/properties"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		props map[string]string
		ok    bool
	}{
		{"defaults", nil, true},
		{"zero registers", map[string]string{Registers: "0"}, false},
		{"negative registers", map[string]string{Registers: "-3"}, false},
		{"zero threads", map[string]string{ThreadCount: "0"}, false},
		{"zero operations", map[string]string{OperationCount: "0"}, false},
		{"zero upperbound", map[string]string{UpperBound: "0"}, false},
		{"fewer ops than threads", map[string]string{OperationCount: "2", ThreadCount: "4"}, false},
		{"explicit good config", map[string]string{
			Registers:      "5",
			ThreadCount:    "4",
			OperationCount: "400",
			UpperBound:     "1",
		}, true},
	}

	for _, c := range cases {
		p := properties.NewProperties()
		for k, v := range c.props {
			p.Set(k, v)
		}

		err := Validate(p)
		if c.ok && err != nil {
			t.Errorf("%s: want no error, but got %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: want error, but got none", c.name)
		}
	}
}
