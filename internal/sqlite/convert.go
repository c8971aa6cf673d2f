// Conversions between nullable SQLite columns and pointer-typed entity fields.
package sqlite

import "database/sql"

// bindString converts a *string field to a bind value (nil becomes NULL).
func bindString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// bindBool converts a *bool field to a bind value (nil becomes NULL).
func bindBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}

// bindInt converts a *int field to a bind value (nil becomes NULL).
func bindInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

// stringPtr converts a scanned nullable column to a *string.
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// boolPtr converts a scanned nullable column to a *bool.
func boolPtr(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	b := nb.Bool
	return &b
}

// intPtr converts a scanned nullable column to a *int.
func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}
