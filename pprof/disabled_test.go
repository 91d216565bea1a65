//go:build !pprof

package pprof

import "testing"

func TestDisabled(t *testing.T) {
	t.Parallel()

	if m := Modes(); len(m) != 0 {
		t.Errorf("Modes() = %v, want none", m)
	}

	if _, ok := Make(WithMode("cpu")).Start().(ignore); !ok {
		t.Error("Start() should be a no-op without tag pprof")
	}
}
