package queries

import (
	"context"

	"gorm.io/gorm"
)

// queryOne scans the first row of a query into dest. It reports false when
// the query returned no rows.
func queryOne(ctx context.Context, db *gorm.DB, sql string, args []any, dest ...any) (bool, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return false, rows.Err()
	}
	if err = rows.Scan(dest...); err != nil {
		return false, err
	}
	return true, rows.Err()
}
