package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorDump is a log-friendly view of an error chain.
type ErrorDump struct {
	TopMessage string         `json:"top_message"`
	Code       Code           `json:"code,omitempty"`
	Root       string         `json:"root,omitempty"`
	Chain      []string       `json:"chain,omitempty"`
	Postgres   *PGDiagnostics `json:"postgres,omitempty"`
}

// PGDiagnostics carries the server-side fields of a Postgres error.
type PGDiagnostics struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	Table      string `json:"table,omitempty"`
	Column     string `json:"column,omitempty"`
	Constraint string `json:"constraint,omitempty"`
}

// LogFields renders the diagnostics as pg_* log fields.
func (d *PGDiagnostics) LogFields() map[string]any {
	if d == nil {
		return nil
	}
	return map[string]any{
		"pg_code":       d.Code,
		"pg_message":    d.Message,
		"pg_detail":     d.Detail,
		"pg_table":      d.Table,
		"pg_column":     d.Column,
		"pg_constraint": d.Constraint,
	}
}

// Dump flattens err for structured logging, outermost first.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error()}
	if typed := As(err); typed != nil {
		d.Code = typed.Code()
	}
	for e := err; e != nil; e = stdErrors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
		d.Root = e.Error()
	}

	var pgErr *pgconn.PgError
	if stdErrors.As(err, &pgErr) {
		d.Postgres = &PGDiagnostics{
			Code:       pgErr.Code,
			Message:    pgErr.Message,
			Detail:     pgErr.Detail,
			Table:      pgErr.TableName,
			Column:     pgErr.ColumnName,
			Constraint: pgErr.ConstraintName,
		}
	}
	return d
}
