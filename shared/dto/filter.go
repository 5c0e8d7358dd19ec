package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq    = "eq"
	FilterOperatorNotEq = "not_eq"
	FilterOperatorIn    = "in"
	FilterIsNotNull     = "is_not_null"
	FilterIsNull        = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq not_eq in is_not_null is_null"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorNotEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s != :%s", column, argName), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if kind := val.Kind(); kind != reflect.Array && kind != reflect.Slice {
			args[argName] = f.Value

			return fmt.Sprintf("%s = :%s", column, argName), args
		}

		named := make([]string, val.Len())
		for idx := range val.Len() {
			args[fmt.Sprintf("%s_%d", argName, idx)] = val.Index(idx).Interface()
			named[idx] = fmt.Sprintf(":%s_%d", argName, idx)
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		var where string
		var arg map[string]any

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)
		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
