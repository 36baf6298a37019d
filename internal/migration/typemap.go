// Package migration builds Laravel migration classes from table schemas.
package migration

import (
	"sort"

	"github.com/example/laramig/internal/models"
)

// StringCall is the builder call that accepts a length argument.
const StringCall = "string"

// TypeMap maps abstract column types to Blueprint builder calls.
type TypeMap map[models.ColumnType]string

// DefaultTypeMap returns the standard column type table.
func DefaultTypeMap() TypeMap {
	return TypeMap{
		models.TypeBigInt:             "bigInteger",
		models.TypeBlob:               "binary",
		models.TypeBoolean:            "boolean",
		models.TypeChar:               "char",
		models.TypeDate:               "date",
		models.TypeDateTime:           "dateTime",
		models.TypeDecimal:            "decimal",
		models.TypeDouble:             "double",
		models.TypeFloat:              "float",
		models.TypeGeometry:           "geometry",
		models.TypeGeometryCollection: "geometryCollection",
		models.TypeVarchar:            StringCall,
		models.TypeText:               "text",
		models.TypeInteger:            "integer",
	}
}

// Lookup returns the builder call for t.
func (m TypeMap) Lookup(t models.ColumnType) (string, bool) {
	call, ok := m[t]
	return call, ok
}

// With returns a copy of m with t mapped to call.
func (m TypeMap) With(t models.ColumnType, call string) TypeMap {
	out := make(TypeMap, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[t] = call
	return out
}

// Types returns the mapped column types sorted by name.
func (m TypeMap) Types() []models.ColumnType {
	types := make([]models.ColumnType, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
