package models

import (
	"regexp"
	"strconv"
	"strings"
)

// ColumnType is an abstract column type name such as "VARCHAR".
type ColumnType string

// Supported column types
const (
	TypeBigInt             ColumnType = "BIGINT"
	TypeBlob               ColumnType = "BLOB"
	TypeBoolean            ColumnType = "BOOLEAN"
	TypeChar               ColumnType = "CHAR"
	TypeDate               ColumnType = "DATE"
	TypeDateTime           ColumnType = "DATETIME"
	TypeDecimal            ColumnType = "DECIMAL"
	TypeDouble             ColumnType = "DOUBLE"
	TypeFloat              ColumnType = "FLOAT"
	TypeGeometry           ColumnType = "GEOMETRY"
	TypeGeometryCollection ColumnType = "GEOMETRYCOLLECTION"
	TypeVarchar            ColumnType = "VARCHAR"
	TypeText               ColumnType = "TEXT"
	TypeInteger            ColumnType = "INTEGER"
)

// ElementKind identifies what a schema element describes.
type ElementKind string

// Element kinds. Only entity views are turned into migrations.
const (
	KindEntityView   ElementKind = "entity"
	KindRelationship ElementKind = "relationship"
	KindNote         ElementKind = "note"
)

// Column is one column of a table. Length is zero when not declared.
type Column struct {
	Name   string     `yaml:"name" json:"name"`
	Type   ColumnType `yaml:"type" json:"type"`
	Length int        `yaml:"length,omitempty" json:"length,omitempty"`
}

// Table is a table name and its columns in declaration order.
type Table struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []Column `yaml:"columns" json:"columns"`
}

// Element is one item of a schema diagram. Table is set for entity views.
type Element struct {
	Kind  ElementKind `yaml:"kind" json:"kind"`
	Table *Table      `yaml:"model" json:"model"`
}

// IsEntityView reports whether e describes a table.
func (e Element) IsEntityView() bool {
	return e.Kind == KindEntityView && e.Table != nil
}

// EntityView wraps t in an entity view element.
func EntityView(t Table) Element {
	return Element{Kind: KindEntityView, Table: &t}
}

var declaredLength = regexp.MustCompile(`\(\s*(\d+)`)

// declaredAliases maps normalized SQL type names to the supported types.
var declaredAliases = map[string]ColumnType{
	"BIGINT":                      TypeBigInt,
	"INT8":                        TypeBigInt,
	"BIGSERIAL":                   TypeBigInt,
	"BLOB":                        TypeBlob,
	"BYTEA":                       TypeBlob,
	"BINARY":                      TypeBlob,
	"VARBINARY":                   TypeBlob,
	"BOOLEAN":                     TypeBoolean,
	"BOOL":                        TypeBoolean,
	"CHAR":                        TypeChar,
	"CHARACTER":                   TypeChar,
	"BPCHAR":                      TypeChar,
	"NCHAR":                       TypeChar,
	"DATE":                        TypeDate,
	"DATETIME":                    TypeDateTime,
	"TIMESTAMP":                   TypeDateTime,
	"TIMESTAMP WITHOUT TIME ZONE": TypeDateTime,
	"TIMESTAMP WITH TIME ZONE":    TypeDateTime,
	"TIMESTAMPTZ":                 TypeDateTime,
	"DECIMAL":                     TypeDecimal,
	"NUMERIC":                     TypeDecimal,
	"DOUBLE":                      TypeDouble,
	"DOUBLE PRECISION":            TypeDouble,
	"FLOAT8":                      TypeDouble,
	"FLOAT":                       TypeFloat,
	"REAL":                        TypeFloat,
	"FLOAT4":                      TypeFloat,
	"GEOMETRY":                    TypeGeometry,
	"GEOMETRYCOLLECTION":          TypeGeometryCollection,
	"VARCHAR":                     TypeVarchar,
	"CHARACTER VARYING":           TypeVarchar,
	"NVARCHAR":                    TypeVarchar,
	"VARYING CHARACTER":           TypeVarchar,
	"TEXT":                        TypeText,
	"CLOB":                        TypeText,
	"INTEGER":                     TypeInteger,
	"INT":                         TypeInteger,
	"INT4":                        TypeInteger,
	"SMALLINT":                    TypeInteger,
	"INT2":                        TypeInteger,
	"TINYINT":                     TypeInteger,
	"MEDIUMINT":                   TypeInteger,
	"SERIAL":                      TypeInteger,
}

// ParseDeclaredType maps a database's declared column type, such as
// "character varying(255)", to a ColumnType and length. Types with no known
// alias come back uppercased so later stages can skip them.
func ParseDeclaredType(declared string) (ColumnType, int) {
	length := 0
	if m := declaredLength.FindStringSubmatch(declared); m != nil {
		length, _ = strconv.Atoi(m[1])
	}

	name := declared
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	name = strings.ToUpper(strings.Join(strings.Fields(name), " "))

	if t, ok := declaredAliases[name]; ok {
		return t, length
	}
	return ColumnType(name), length
}
