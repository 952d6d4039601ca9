package repository

import (
	"context"

	"imagevault/internal/model"
)

// Repository defines the storage operations of the content service.
type Repository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
	UpdateAPIKey(ctx context.Context, userID int64, apiKey string) error

	CreateFolder(ctx context.Context, folder *model.Folder) error
	GetFolder(ctx context.Context, folderID int64) (*model.Folder, error)
	ListFolders(ctx context.Context, userID int64) ([]*model.Folder, error)
	DeleteFolder(ctx context.Context, folderID int64) error

	CreateFile(ctx context.Context, file *model.File) error
	GetFile(ctx context.Context, fileID int64) (*model.File, error)
	ListFiles(ctx context.Context, folderID int64) ([]*model.File, error)
	DeleteFile(ctx context.Context, fileID int64) error
	SearchFiles(ctx context.Context, userID int64, query string) ([]*model.File, error)

	AddActivity(ctx context.Context, entry *model.ActivityLog) error
}
