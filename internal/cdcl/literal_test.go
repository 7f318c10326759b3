package cdcl

import "testing"

func TestLiteralNeg(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		want Literal
	}{
		{"positive to negative", posLiteral(3), negLiteral(3)},
		{"negative to positive", negLiteral(3), posLiteral(3)},
		{"double negation", posLiteral(0).Neg().Neg(), posLiteral(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.lit.Neg(); got != tc.want {
				t.Errorf("Neg() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLiteralIsPos(t *testing.T) {
	if !posLiteral(5).IsPos() {
		t.Errorf("posLiteral(5).IsPos() = false, want true")
	}
	if negLiteral(5).IsPos() {
		t.Errorf("negLiteral(5).IsPos() = true, want false")
	}
}

func TestLiteralVarID(t *testing.T) {
	for v := 0; v < 8; v++ {
		if got := posLiteral(v).VarID(); got != v {
			t.Errorf("posLiteral(%d).VarID() = %d, want %d", v, got, v)
		}
		if got := negLiteral(v).VarID(); got != v {
			t.Errorf("negLiteral(%d).VarID() = %d, want %d", v, got, v)
		}
	}
}

func TestComplementary(t *testing.T) {
	if !complementary(posLiteral(1), negLiteral(1)) {
		t.Errorf("complementary(pos(1), neg(1)) = false, want true")
	}
	if complementary(posLiteral(1), posLiteral(2)) {
		t.Errorf("complementary(pos(1), pos(2)) = true, want false")
	}
}

func TestVarTableIntern(t *testing.T) {
	vt := newVarTable()

	a1 := vt.intern("a")
	b1 := vt.intern("b")
	a2 := vt.intern("a")

	if a1 != a2 {
		t.Errorf("intern(\"a\") not stable: got %d then %d", a1, a2)
	}
	if a1 == b1 {
		t.Errorf("distinct names interned to the same id %d", a1)
	}
	if got := vt.name(a1); got != "a" {
		t.Errorf("name(%d) = %q, want %q", a1, got, "a")
	}
	if got := vt.size(); got != 2 {
		t.Errorf("size() = %d, want 2", got)
	}
}

func TestVarTablePosNeg(t *testing.T) {
	vt := newVarTable()
	p := vt.Pos("x")
	n := vt.Neg("x")
	if !complementary(p, n) {
		t.Errorf("Pos(\"x\") and Neg(\"x\") are not complementary")
	}
}
