package repository

import (
	"fmt"
	"gymhub/shared/dto"
	"reflect"
	"slices"
	"strings"
)

// Table describes how a row struct maps onto a table. Columns come from db
// tags, embedded structs are flattened, and insert:"-" marks columns the
// database fills in (serial ids).
type Table struct {
	Name    string
	Primary string
	Columns []string
	Insert  []string
}

// Describe reads the column layout of T.
func Describe[T any](name, primary string) Table {
	table := Table{Name: name, Primary: primary}
	table.collect(reflect.TypeFor[T]())

	return table
}

func (t *Table) collect(typ reflect.Type) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			t.collect(field.Type)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		t.Columns = append(t.Columns, name)

		if field.Tag.Get("insert") != "-" {
			t.Insert = append(t.Insert, name)
		}
	}
}

// InsertSQL returns a named INSERT that yields the new primary key.
func (t Table) InsertSQL() string {
	placeholders := make([]string, len(t.Insert))
	for i, col := range t.Insert {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Name, strings.Join(t.Insert, ", "), strings.Join(placeholders, ", "), t.Primary)
}

// SelectList qualifies the requested columns, or every column when none are
// given. Unknown names are ignored.
func (t Table) SelectList(only ...string) string {
	cols := make([]string, 0, len(t.Columns))

	for _, col := range t.Columns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		cols = append(cols, t.Name+"."+col)
	}

	return strings.Join(cols, ", ")
}

// OrderBy sorts by a known column, falling back to the primary key so paging
// stays stable.
func (t Table) OrderBy(params dto.QueryParams) string {
	col := t.Primary
	dir := dto.SortDirAsc

	if params.SortBy != "" && slices.Contains(t.Columns, params.SortBy) {
		col = params.SortBy

		if params.SortDir == dto.SortDirDesc {
			dir = dto.SortDirDesc
		}
	}

	return fmt.Sprintf("ORDER BY %s.%s %s", t.Name, col, dir)
}

// Where renders filter as a WHERE clause. An empty filter yields an empty
// clause and an empty argument map.
func Where(filter dto.FilterGroup) (string, map[string]any) {
	clause, args := filter.GetWhereClause()
	if clause == "" {
		return "", map[string]any{}
	}

	return "WHERE " + clause, args
}

// SetList renders the assignments of an UPDATE in column order and adds the
// values to args under set_ prefixed names.
func SetList(changes map[string]any, args map[string]any) string {
	cols := make([]string, 0, len(changes))
	for col := range changes {
		cols = append(cols, col)
	}

	slices.Sort(cols)

	assignments := make([]string, len(cols))
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = :set_%s", col, col)
		args["set_"+col] = changes[col]
	}

	return strings.Join(assignments, ", ")
}
