package mysql

import (
	"database/sql"
	"errors"
	"math"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/go-playground/validator/v10"
	"github.com/jbeshir/swipe-feedback/internal/datasources"
)

var (
	_ datasources.RatingRepository  = (*Repository)(nil)
	_ datasources.ContentRepository = (*Repository)(nil)
	_ datasources.InsightRepository = (*Repository)(nil)
)

// mysqlErrDuplicateEntry is ER_DUP_ENTRY.
const mysqlErrDuplicateEntry = 1062

type Repository struct {
	db       *sql.DB
	validate *validator.Validate
}

func New(db *sql.DB) *Repository {
	return &Repository{
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

func closeRows(rows *sql.Rows) {
	_ = rows.Close()
}

func paginationToLimitOffset(page, pageSize int) (limit, offset int) {
	if pageSize > math.MaxInt32 {
		pageSize = math.MaxInt32
	}
	limit = pageSize

	off := (page - 1) * pageSize
	if off > math.MaxInt32 {
		off = math.MaxInt32
	}
	offset = max(0, off)

	return limit, offset
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
