package value

import "testing"

func TestVariableTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  VariableType
		want string
	}{
		{"U8", U8Type(), "U8"},
		{"U16", U16Type(), "U16"},
		{"U32", U32Type(), "U32"},
		{"U64", U64Type(), "U64"},
		{"Bool", BoolType(), "Bool"},
		{"String", StringType(), "String"},
		{"Array(U8)", ArrayType(U8Type()), "Array(U8)"},
		{"Array(Array(U64))", ArrayType(ArrayType(U64Type())), "Array(Array(U64))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVariableTypeEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b VariableType
		want bool
	}{
		{"U8 == U8", U8Type(), U8Type(), true},
		{"U8 != U16", U8Type(), U16Type(), false},
		{"Array(U8) == Array(U8)", ArrayType(U8Type()), ArrayType(U8Type()), true},
		{"Array(U8) != Array(U16)", ArrayType(U8Type()), ArrayType(U16Type()), false},
		{"Array(U8) != U8", ArrayType(U8Type()), U8Type(), false},
		{
			"Array(Array(Bool)) == Array(Array(Bool))",
			ArrayType(ArrayType(BoolType())), ArrayType(ArrayType(BoolType())),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	numeric := []VariableType{U8Type(), U16Type(), U32Type(), U64Type()}
	for _, typ := range numeric {
		if !typ.IsNumeric() {
			t.Errorf("%s.IsNumeric() = false, want true", typ)
		}
	}
	nonNumeric := []VariableType{BoolType(), StringType(), ArrayType(U8Type())}
	for _, typ := range nonNumeric {
		if typ.IsNumeric() {
			t.Errorf("%s.IsNumeric() = true, want false", typ)
		}
	}
}
