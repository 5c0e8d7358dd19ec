package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/shared/constant"
	"hostel/shared/dto"
	"hostel/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"
)

var (
	ErrNotFound       = errors.New("record not found")
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	table string
	alias string
}

// Repository is a generic sqlx table gateway. Columns come from the `db` tags of T,
// including embedded structs.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	insertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		insertColumns: insertColumns,
	}
}

func (repo *Repository[T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op)
}

// InsertQuery is the named INSERT statement for every insertable column of T.
func (repo *Repository[T]) InsertQuery() string {
	placeholders := make([]string, len(repo.insertColumns))
	for i, col := range repo.insertColumns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	query := repo.InsertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, model); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

// ExistQuery wraps where in a SELECT EXISTS over the table.
func (repo *Repository[T]) ExistQuery(where string) string {
	return fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where)
}

// Exist reports whether any row matches filter.
func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := repo.ExistQuery(where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	exist := false
	if err = prepare.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}

	return exist, nil
}

// Get returns the first row matching filter, or ErrNotFound.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return model, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", repo.SelectColumns(columns...), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, ErrNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	var ordering, pagination string

	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		pagination = " LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit
		pagination = " LIMIT :limit"
	}

	if params.SortBy != "" {
		sortDir := params.SortDir
		if sortDir != dto.SortDirAsc {
			sortDir = dto.SortDirDesc
		}

		ordering = fmt.Sprintf(" ORDER BY %s %s", params.SortBy, sortDir)
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s%s%s", repo.SelectColumns(columns...), repo.table, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

// Update applies mod to every row matching filter and returns the number of rows changed.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	fields := slices.Sorted(maps.Keys(mod))
	assignments := make([]string, len(fields))

	for i, col := range fields {
		assignments[i] = fmt.Sprintf("%s = :%s", col, col)
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

// SelectColumns renders the select list, optionally restricted to the named columns.
func (repo *Repository[T]) SelectColumns(only ...string) string {
	columns := []string{}

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		switch {
		case col.table == "":
			columns = append(columns, col.name)
		case col.alias != "":
			columns = append(columns, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			columns = append(columns, fmt.Sprintf("%s.%s", col.table, col.name))
		}
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return where, map[string]any{}
	}

	return " WHERE " + where, args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		dbTag := field.Tag.Get("db")

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		if dbTag == "" || dbTag == "-" {
			continue
		}

		tableField := field.Tag.Get("table")
		if tableField == "" {
			tableField = table
		}

		if tableField == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: tableField, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: tableField})
		}
	}

	return columns, insertColumns
}
