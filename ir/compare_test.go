package ir

import (
	"slices"
	"testing"
)

func obj(kvs ...KeyVal) *Node {
	return FromKeyVals(kvs)
}

func arr(vs ...*Node) *Node {
	return FromSlice(vs)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"nil before null", nil, Null(), -1},
		{"null before bool", Null(), FromBool(false), -1},
		{"bool before number", FromBool(true), FromInt(0), -1},
		{"number before string", FromFloat(1e9), FromString(""), -1},
		{"string before array", FromString("z"), arr(), -1},
		{"array before object", arr(FromInt(1)), obj(), -1},

		{"false before true", FromBool(false), FromBool(true), -1},
		{"ints by value", FromInt(-3), FromInt(2), -1},
		{"floats by value", FromFloat(0.5), FromFloat(0.25), 1},
		{"int before float", FromInt(100), FromFloat(1), -1},
		{"42 and 42.0 differ", FromInt(42), FromFloat(42), -1},

		{"strings bytewise", FromString("Zone"), FromString("zone"), -1},

		{"empty arrays", arr(), arr(), 0},
		{"prefix array first", arr(FromInt(1)), arr(FromInt(1), Null()), -1},
		{"arrays by element", arr(FromInt(1), FromInt(3)), arr(FromInt(1), FromInt(2)), 1},

		{"empty objects", obj(), obj(), 0},
		{"field order ignored",
			obj(KeyVal{"a", FromInt(1)}, KeyVal{"b", FromInt(2)}),
			obj(KeyVal{"b", FromInt(2)}, KeyVal{"a", FromInt(1)}),
			0},
		{"fewer fields first",
			obj(KeyVal{"a", FromInt(1)}),
			obj(KeyVal{"a", FromInt(1)}, KeyVal{"b", Null()}),
			-1},
		{"objects by key",
			obj(KeyVal{"visits", FromInt(9)}),
			obj(KeyVal{"zone", FromInt(1)}),
			-1},
		{"objects by value",
			obj(KeyVal{"visits", FromInt(4)}),
			obj(KeyVal{"visits", FromInt(1)}),
			1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("reversed Compare = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestCompareSorts(t *testing.T) {
	vals := []*Node{FromString("a"), obj(), FromFloat(2), Null(), FromInt(3), arr(), FromBool(true)}
	slices.SortFunc(vals, Compare)
	want := []Type{NullType, BoolType, NumberType, NumberType, StringType, ArrayType, ObjectType}
	for i, v := range vals {
		if v.Type != want[i] {
			t.Fatalf("position %d: %s, want %s", i, v.Type, want[i])
		}
	}
	if !vals[2].IsInt() || !vals[3].IsFloat() {
		t.Errorf("int did not sort before float")
	}
}
