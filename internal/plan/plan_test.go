package plan

import (
	"testing"

	"github.com/AnyUserName/bmpops/internal/ops"
)

func TestBuiltinPlansParse(t *testing.T) {
	for _, name := range Names() {
		p, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		list, err := p.Operations()
		if err != nil {
			t.Fatalf("plan %s: %v", name, err)
		}
		if len(list) != len(p.Ops) {
			t.Errorf("plan %s: %d operations, %d names", name, len(list), len(p.Ops))
		}
	}
}

func TestGetDefault(t *testing.T) {
	p, err := Get(DefaultName)
	if err != nil {
		t.Fatal(err)
	}
	list, _ := p.Operations()
	want := []ops.Operation{ops.CopyOp(), ops.InvertOp(), ops.FlipHorizontalOp()}
	if len(list) != len(want) {
		t.Fatalf("got %d operations", len(list))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("op %d: got %s, want %s", i, list[i], want[i])
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("sepia"); err == nil {
		t.Error("unknown plan accepted")
	}
}

func TestCustom(t *testing.T) {
	if _, err := Custom([]string{"invert", "quantize-9"}).Operations(); err == nil {
		t.Error("invalid level accepted")
	}
	if _, err := Custom(nil).Operations(); err == nil {
		t.Error("empty plan accepted")
	}
	list, err := Custom([]string{"remove-g"}).Operations()
	if err != nil || len(list) != 1 || list[0].String() != "remove-green" {
		t.Errorf("custom plan: %v, %v", list, err)
	}
}
