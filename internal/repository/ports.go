package repository

import (
	"context"
	"flowledger/internal/db"
)

type Storage interface {
	MigrateModels(models ...any) error
	Insert(ctx context.Context, records any) error
	InsertIgnoreConflicts(ctx context.Context, records any) (int64, error)
	Upsert(ctx context.Context, record any, conflictColumns []string, updateColumns []string) error
	Update(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, q db.Query, dest any) error
	GetAllBy(ctx context.Context, q db.Query, dest any) error
	MaxOf(ctx context.Context, model any, column string, q db.Query) (int64, bool, error)
	Count(ctx context.Context, model any, q db.Query) (int64, error)
	Delete(ctx context.Context, model any, q db.Query) (int64, error)
	DeleteAll(ctx context.Context, models ...any) error
	Transaction(ctx context.Context, fn func(tx *db.GormDB) error) error
}
