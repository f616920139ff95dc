package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/virtualgraham/dagoba-go/core"
)

func TestValueEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b core.Value
		want bool
	}{
		{"null==null", core.Null, core.Null, true},
		{"int 1==1", core.NewInt(1), core.NewInt(1), true},
		{"int 1!=2", core.NewInt(1), core.NewInt(2), false},
		{"float bitwise", core.NewFloat(0.1), core.NewFloat(0.1), true},
		{"float vs nearly equal", core.NewFloat(0.1), core.NewFloat(0.1000001), false},
		{"kind mismatch", core.NewInt(1), core.NewString("1"), false},
		{
			"nested array",
			core.NewArray(core.NewInt(1), core.NewString("x")),
			core.NewArray(core.NewInt(1), core.NewString("x")),
			true,
		},
		{
			"nested array order matters",
			core.NewArray(core.NewInt(1), core.NewInt(2)),
			core.NewArray(core.NewInt(2), core.NewInt(1)),
			false,
		},
		{
			"object key-unique, order-insensitive",
			core.NewObject(map[string]core.Value{"a": core.NewInt(1), "b": core.NewInt(2)}),
			core.NewObject(map[string]core.Value{"b": core.NewInt(2), "a": core.NewInt(1)}),
			true,
		},
		{
			"object missing key",
			core.NewObject(map[string]core.Value{"a": core.NewInt(1)}),
			core.NewObject(map[string]core.Value{"a": core.NewInt(1), "b": core.NewInt(2)}),
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal() = %v, want %v (diff: %s)", got, tc.want, cmp.Diff(tc.a, tc.b))
			}
		})
	}
}

func TestValueCloneIsIndependent(t *testing.T) {
	orig := core.NewObject(map[string]core.Value{
		"tags": core.NewArray(core.NewString("a"), core.NewString("b")),
	})
	clone := orig.Clone()

	clone.Object["tags"].Array[0] = core.NewString("mutated")

	if orig.Object["tags"].Array[0].Str != "a" {
		t.Fatalf("mutating clone leaked back into original: %q", orig.Object["tags"].Array[0].Str)
	}
	if diff := cmp.Diff(orig, orig.Clone()); diff != "" {
		t.Fatalf("clone of original should still equal original (-orig +reclone):\n%s", diff)
	}
}
