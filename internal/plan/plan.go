// Package plan names the operation lists a batch run can apply.
package plan

import (
	"fmt"
	"sort"

	"github.com/AnyUserName/bmpops/internal/ops"
)

// Plan is a named set of operations applied to every file in a batch.
type Plan struct {
	Name string
	Ops  []string // operation names accepted by ops.Parse
}

// DefaultName is used when no plan and no explicit operations are given.
const DefaultName = "basic"

// Built-in plans.
var plans = map[string]Plan{
	"basic": {
		Name: "basic",
		Ops:  []string{"copy", "invert", "flip"},
	},
	"channels": {
		Name: "channels",
		Ops:  []string{"remove-red", "remove-green", "remove-blue"},
	},
	"quantize": {
		Name: "quantize",
		Ops: []string{
			"quantize-1", "quantize-2", "quantize-3", "quantize-4",
			"quantize-5", "quantize-6", "quantize-7",
		},
	},
	"all": {
		Name: "all",
		Ops: []string{
			"copy", "invert", "flip",
			"remove-red", "remove-green", "remove-blue",
			"quantize-1", "quantize-2", "quantize-3", "quantize-4",
			"quantize-5", "quantize-6", "quantize-7",
		},
	},
}

// Get returns a built-in plan by name.
func Get(name string) (Plan, error) {
	if p, ok := plans[name]; ok {
		return p, nil
	}
	return Plan{}, fmt.Errorf("unknown plan %q (available: %v)", name, Names())
}

// Custom wraps an explicit operation list under the name "custom".
func Custom(names []string) Plan {
	return Plan{Name: "custom", Ops: names}
}

// Names lists the built-in plans in sorted order.
func Names() []string {
	names := make([]string, 0, len(plans))
	for n := range plans {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Operations parses the plan's operation names.
func (p Plan) Operations() ([]ops.Operation, error) {
	list, err := ops.ParseList(p.Ops)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", p.Name, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("plan %s: no operations", p.Name)
	}
	return list, nil
}
