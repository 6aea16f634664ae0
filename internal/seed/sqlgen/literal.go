// Copyright (c) 2026 Oshidora. All rights reserved.

package sqlgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// TimeLayout renders timestamps: UTC, millisecond precision, ISO-8601.
// Text timestamps in this layout sort chronologically.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// DateLayout renders calendar dates such as ranking as-of dates.
const DateLayout = "2006-01-02"

// Null is rendered as the SQL NULL keyword.
var Null any

// Literal renders v as a SQL literal both SQLite and Postgres accept.
//
//   - nil, nil pointers and zero times render NULL;
//   - integers render bare, floats in shortest form;
//   - booleans render 1 or 0 (INTEGER flags);
//   - times render as quoted [TimeLayout] text in UTC;
//   - strings are NFC-normalized, stripped of NUL bytes and quoted with
//     embedded single quotes doubled.
//
// Other types render through fmt as quoted text.
func Literal(v any) string {
	switch value := v.(type) {
	case nil:
		return "NULL"
	case string:
		return Quote(value)
	case *string:
		if value == nil {
			return "NULL"
		}
		return Quote(*value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint32:
		return strconv.FormatUint(uint64(value), 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		if value {
			return "1"
		}
		return "0"
	case time.Time:
		if value.IsZero() {
			return "NULL"
		}
		return Quote(value.UTC().Format(TimeLayout))
	case *time.Time:
		if value == nil {
			return "NULL"
		}
		return Literal(*value)
	}
	return Quote(fmt.Sprint(v))
}

// Quote renders s as a single-quoted string literal.
func Quote(s string) string {
	s = strings.ReplaceAll(norm.NFC.String(s), "\x00", "")
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Optional returns Null for an empty string, s otherwise.
func Optional(s string) any {
	if s == "" {
		return Null
	}
	return s
}
