package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

// NewGormDB opens the database behind dsn.
func NewGormDB(dsn string) (*GormDB, error) {
	return Open(Dialector(dsn), logger.Warn)
}

// Open connects through an explicit dialector. Sqlite connections are limited to one so
// every write is serialized through a single connection.
func Open(dialector gorm.Dialector, level logger.LogLevel) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if isSqlite(dialector) {
		sqlDB, err := db.DB()
		if err != nil {
			return &GormDB{}, fmt.Errorf("get sql db conn: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert creates records, which may be a pointer to a struct or to a slice of structs.
func (f *GormDB) Insert(ctx context.Context, records any) error {
	if isEmptySlice(records) {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// InsertIgnoreConflicts creates the record unless it collides with a unique key, and
// reports how many rows were actually written.
func (f *GormDB) InsertIgnoreConflicts(ctx context.Context, records any) (int64, error) {
	if isEmptySlice(records) {
		return 0, nil
	}

	tx := f.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(records)
	if tx.Error != nil {
		return 0, fmt.Errorf("insert to table: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

// Upsert inserts the record or, on a conflict over conflictColumns, overwrites only
// updateColumns of the existing row.
func (f *GormDB) Upsert(ctx context.Context, record any, conflictColumns []string, updateColumns []string) error {
	columns := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		columns = append(columns, clause.Column{Name: c})
	}

	err := f.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   columns,
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}

	return nil
}

// Update writes every field of record back to its row.
func (f *GormDB) Update(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, q Query, dest any) error {
	err := f.scoped(ctx, q).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", q.Where, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, q Query, dest any) error {
	tx := f.scoped(ctx, q).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", q.Where, tx.Error)
	}
	return nil
}

// MaxOf returns the largest value of column among the matching rows of model. The
// boolean is false when no row matched.
func (f *GormDB) MaxOf(ctx context.Context, model any, column string, q Query) (int64, bool, error) {
	var maxValue sql.NullInt64

	tx := f.DB.WithContext(ctx).Model(model)
	if q.Where != "" {
		tx = tx.Where(q.Where, q.Args...)
	}

	err := tx.Select(fmt.Sprintf("MAX(%s)", column)).Scan(&maxValue).Error
	if err != nil {
		return 0, false, fmt.Errorf("max of %q: %w", column, err)
	}

	return maxValue.Int64, maxValue.Valid, nil
}

func (f *GormDB) Count(ctx context.Context, model any, q Query) (int64, error) {
	var count int64

	tx := f.DB.WithContext(ctx).Model(model)
	if q.Where != "" {
		tx = tx.Where(q.Where, q.Args...)
	}

	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("get model count: %w", err)
	}
	return count, nil
}

func (f *GormDB) Delete(ctx context.Context, model any, q Query) (int64, error) {
	if q.Where == "" {
		return 0, errors.New("delete without condition")
	}

	tx := f.DB.WithContext(ctx).Where(q.Where, q.Args...).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete records by %q: %w", q.Where, tx.Error)
	}
	return tx.RowsAffected, nil
}

// DeleteAll removes every row of each model.
func (f *GormDB) DeleteAll(ctx context.Context, models ...any) error {
	session := f.DB.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range models {
		if err := session.Delete(m).Error; err != nil {
			return fmt.Errorf("clear table %T: %w", m, err)
		}
	}
	return nil
}

// Transaction runs fn inside a single database transaction. Any error returned by fn
// rolls back every write made through tx.
func (f *GormDB) Transaction(ctx context.Context, fn func(tx *GormDB) error) error {
	return f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormDB{DB: tx})
	})
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (f *GormDB) scoped(ctx context.Context, q Query) *gorm.DB {
	tx := f.DB.WithContext(ctx)
	if q.Where != "" {
		tx = tx.Where(q.Where, q.Args...)
	}
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx
}

func isEmptySlice(records any) bool {
	v := reflect.ValueOf(records)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v.Kind() == reflect.Slice && v.Len() == 0
}
