package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

// SQLSTATE unique_violation
const uniqueViolationCode = "23505"

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert record: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entity any, order string) error {
	tx := f.DB.WithContext(ctx)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

// UpdateColumns writes the given columns of the row with the given primary key
// in a single statement and reports how many rows were changed.
func (f *PostgresDB) UpdateColumns(ctx context.Context, model any, id any, columns map[string]any) (int64, error) {
	if len(columns) == 0 {
		return 0, errors.New("no columns to update")
	}

	tx := f.DB.WithContext(ctx).Model(model).Where("id = ?", id).Updates(columns)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return 0, fmt.Errorf("update record %v: %w", id, ErrDuplicateKey)
		}
		return 0, fmt.Errorf("update record %v: %w", id, tx.Error)
	}
	return tx.RowsAffected, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
