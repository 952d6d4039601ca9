package interfaces

import (
	"context"

	"imagevault/internal/model"
	"imagevault/internal/service"
)

// The API layer depends on these interfaces rather than on the concrete
// services, so handlers can be tested against mocks.

// AccountService defines registration, login and API key resolution.
type AccountService interface {
	Register(ctx context.Context, req *service.RegisterRequest) (string, error)
	Login(ctx context.Context, req *service.LoginRequest) (*model.User, error)
	Authenticate(ctx context.Context, apiKey string) (*model.User, error)
	RefreshKey(ctx context.Context, user *model.User) (string, error)
}

// LibraryService defines folder and file management for one user.
type LibraryService interface {
	ListFolders(ctx context.Context, user *model.User) ([]model.FolderSummary, error)
	CreateFolder(ctx context.Context, user *model.User, req *service.CreateFolderRequest) (*model.FolderSummary, error)
	GetFolder(ctx context.Context, user *model.User, folderID int64) (*model.FolderDetail, error)
	DeleteFolder(ctx context.Context, user *model.User, folderID int64) error
	FolderFiles(ctx context.Context, user *model.User, folderID int64, kind service.FileKind) ([]model.FileItem, error)
	Upload(ctx context.Context, user *model.User, folderID int64, in service.UploadInput) (*model.FileItem, error)
	GetFile(ctx context.Context, user *model.User, fileID int64) (*model.FileItem, error)
	DeleteFile(ctx context.Context, user *model.User, fileID int64) error
	PDFText(ctx context.Context, user *model.User, fileID int64) (*model.FileItem, error)
	Search(ctx context.Context, user *model.User, query string) ([]model.FileItem, error)
}

// ChatbotService defines the chat front-end's message handling.
type ChatbotService interface {
	HandleMessage(ctx context.Context, apiKey, message string) model.Reply
	VerifyKey(ctx context.Context, apiKey string) (bool, error)
}
