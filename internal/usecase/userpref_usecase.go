package usecase

import "context"

// UserPrefUsecase reads and writes preferences of the acting user.
type UserPrefUsecase interface {
	Get(ctx context.Context, area, name string) (string, bool, error)
	Put(ctx context.Context, area, name, value string, persistent bool) error
	Remove(ctx context.Context, area, name string) error
}

// PrefCache is the write-back cache behind UserPrefUsecase.
type PrefCache interface {
	GetEntry(ctx context.Context, userID int64, area, name string) (string, bool, error)
	PutEntry(ctx context.Context, userID int64, area, name, value string, persistent bool) error
	RemoveEntry(ctx context.Context, userID int64, area, name string) error
}
