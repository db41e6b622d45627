package report

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// column maps one struct field to a report column.
type column struct {
	index int
	name  string
}

var columnCache sync.Map // reflect.Type -> []column

func columnsOf(t reflect.Type) []column {
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]column)
	}

	cols := make([]column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("csv")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		cols = append(cols, column{index: i, name: name})
	}

	actual, _ := columnCache.LoadOrStore(t, cols)
	return actual.([]column)
}

func structType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("report: %s is not a record struct", t))
	}
	return t
}

// Columns returns the column header of a record type, in field declaration
// order. Fields tagged csv:"-" are not columns.
func Columns(record any) []string {
	cols := columnsOf(structType(record))
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.name
	}
	return out
}

// Values returns the cells of one record in column order. Text is emitted
// as is: producers escape it before it reaches the writer.
func Values(record any) []string {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	cols := columnsOf(structType(record))
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = cell(v.Field(c.index))
	}
	return out
}

func cell(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Bool:
		if v.Bool() {
			return "True"
		}
		return "False"
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}

// rows renders a record list.
func rows[T any](records []T) [][]string {
	out := make([][]string, len(records))
	for i := range records {
		out[i] = Values(records[i])
	}
	return out
}
