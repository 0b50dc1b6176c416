package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const microsPerSecond = int64(time.Second / time.Microsecond)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func DateFromPgtype(pd pgtype.Date) civil.Date {
	return civil.DateOf(pd.Time)
}

// ClockPtrFromPgtype converts a TIME column. NULL maps to nil.
func ClockPtrFromPgtype(pt pgtype.Time) *civil.Time {
	if !pt.Valid {
		return nil
	}
	secs := pt.Microseconds / microsPerSecond
	t := civil.Time{
		Hour:       int(secs / 3600),
		Minute:     int(secs % 3600 / 60),
		Second:     int(secs % 60),
		Nanosecond: int(pt.Microseconds%microsPerSecond) * 1000,
	}
	return &t
}

// DecimalFromText parses a NUMERIC column selected as text.
func DecimalFromText(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func DecimalPtrFromText(pt pgtype.Text) (*decimal.Decimal, error) {
	if !pt.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(pt.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

// StringToPgtype maps the empty string to NULL.
func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func DateToPgtype(d civil.Date) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func ClockPtrToPgtype(t *civil.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{Valid: false}
	}
	micros := int64(t.Hour*3600+t.Minute*60+t.Second)*microsPerSecond + int64(t.Nanosecond/1000)
	return pgtype.Time{Microseconds: micros, Valid: true}
}

// DecimalToText is bound with an explicit ::numeric cast in SQL.
func DecimalToText(d decimal.Decimal) string {
	return d.String()
}

func DecimalPtrToText(d *decimal.Decimal) pgtype.Text {
	if d == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: d.String(), Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
