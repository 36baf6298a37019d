package models

import "testing"

func TestParseDeclaredType(t *testing.T) {
	tests := []struct {
		declared   string
		wantType   ColumnType
		wantLength int
	}{
		{"VARCHAR(255)", TypeVarchar, 255},
		{"character varying(80)", TypeVarchar, 80},
		{"character varying", TypeVarchar, 0},
		{"integer", TypeInteger, 0},
		{"INT", TypeInteger, 0},
		{"bigint", TypeBigInt, 0},
		{"int8", TypeBigInt, 0},
		{"text", TypeText, 0},
		{"boolean", TypeBoolean, 0},
		{"timestamp without time zone", TypeDateTime, 0},
		{"DATETIME", TypeDateTime, 0},
		{"date", TypeDate, 0},
		{"NUMERIC(8, 2)", TypeDecimal, 8},
		{"double precision", TypeDouble, 0},
		{"real", TypeFloat, 0},
		{"bytea", TypeBlob, 0},
		{"CHAR(2)", TypeChar, 2},
		{"  varchar  ( 12 )", TypeVarchar, 12},
		{"jsonb", ColumnType("JSONB"), 0},
		{"", ColumnType(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			gotType, gotLength := ParseDeclaredType(tt.declared)
			if gotType != tt.wantType {
				t.Errorf("ParseDeclaredType(%q) type = %q, want %q", tt.declared, gotType, tt.wantType)
			}
			if gotLength != tt.wantLength {
				t.Errorf("ParseDeclaredType(%q) length = %d, want %d", tt.declared, gotLength, tt.wantLength)
			}
		})
	}
}

func TestElement_IsEntityView(t *testing.T) {
	tests := []struct {
		name string
		elem Element
		want bool
	}{
		{"entity", EntityView(Table{Name: "users"}), true},
		{"entity without table", Element{Kind: KindEntityView}, false},
		{"relationship", Element{Kind: KindRelationship, Table: &Table{Name: "x"}}, false},
		{"note", Element{Kind: KindNote}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.elem.IsEntityView(); got != tt.want {
				t.Errorf("IsEntityView() = %v, want %v", got, tt.want)
			}
		})
	}
}
