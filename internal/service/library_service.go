package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	app_errors "imagevault/internal/errors"
	"imagevault/internal/media"
	"imagevault/internal/model"
	"imagevault/internal/repository"
	"imagevault/internal/storage"
)

// FileKind selects the image or PDF subset of a folder.
type FileKind string

const (
	KindImages FileKind = "images"
	KindPDFs   FileKind = "pdfs"
)

// CreateFolderRequest is the payload of POST /api/folders.
type CreateFolderRequest struct {
	Name     string `json:"name" validate:"required,max=100" example:"Vacation"`
	IsPublic bool   `json:"is_public" example:"false"`
}

// UploadInput is one file taken from a multipart upload.
type UploadInput struct {
	Filename    string
	Description string
	Content     io.Reader
}

// LibraryService manages a user's folders and files. Every method checks that
// the folder or file belongs to the calling user.
type LibraryService struct {
	repo      repository.Repository
	store     *storage.Store
	baseURL   string
	maxUpload int64
}

// NewLibraryService builds file URLs from baseURL and rejects uploads larger
// than maxUpload bytes.
func NewLibraryService(repo repository.Repository, store *storage.Store, baseURL string, maxUpload int64) *LibraryService {
	return &LibraryService{
		repo:      repo,
		store:     store,
		baseURL:   strings.TrimRight(baseURL, "/"),
		maxUpload: maxUpload,
	}
}

// --- Folders ---

func (s *LibraryService) ListFolders(ctx context.Context, user *model.User) ([]model.FolderSummary, error) {
	folders, err := s.repo.ListFolders(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not list folders: %w", err)
	}
	out := make([]model.FolderSummary, len(folders))
	for i, f := range folders {
		out[i] = summarize(f)
	}
	return out, nil
}

func (s *LibraryService) CreateFolder(ctx context.Context, user *model.User, req *CreateFolderRequest) (*model.FolderSummary, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is required", app_errors.ErrValidation)
	}
	folder := &model.Folder{
		UserID:    user.ID,
		Name:      name,
		IsPublic:  req.IsPublic,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateFolder(ctx, folder); err != nil {
		return nil, fmt.Errorf("could not create folder: %w", err)
	}

	recordActivity(ctx, s.repo, user.ID, "create_folder", fmt.Sprintf("Created folder '%s'", name))
	summary := summarize(folder)
	return &summary, nil
}

// GetFolder returns the folder with every file in it.
func (s *LibraryService) GetFolder(ctx context.Context, user *model.User, folderID int64) (*model.FolderDetail, error) {
	folder, err := s.ownedFolder(ctx, user, folderID)
	if err != nil {
		return nil, err
	}
	files, err := s.repo.ListFiles(ctx, folder.ID)
	if err != nil {
		return nil, fmt.Errorf("could not list files: %w", err)
	}

	detail := &model.FolderDetail{
		ID:        folder.ID,
		Name:      folder.Name,
		CreatedAt: formatTime(folder.CreatedAt),
		IsPublic:  folder.IsPublic,
		Files:     make([]model.FileItem, len(files)),
	}
	for i, f := range files {
		detail.Files[i] = model.FileItem{
			ID:          f.ID,
			Filename:    f.Filename,
			FileType:    f.FileType,
			Description: f.Description,
			UploadedAt:  formatTime(f.UploadedAt),
		}
	}
	return detail, nil
}

// DeleteFolder removes the folder, its file rows and their stored blobs.
func (s *LibraryService) DeleteFolder(ctx context.Context, user *model.User, folderID int64) error {
	folder, err := s.ownedFolder(ctx, user, folderID)
	if err != nil {
		return err
	}
	files, err := s.repo.ListFiles(ctx, folder.ID)
	if err != nil {
		return fmt.Errorf("could not list files: %w", err)
	}
	if err := s.repo.DeleteFolder(ctx, folder.ID); err != nil {
		return translateRepoErr(err, "folder", folder.ID)
	}

	for _, f := range files {
		if err := s.store.Remove(f.Path); err != nil {
			slog.Warn("Failed to remove stored file", "file_id", f.ID, "path", f.Path, "error", err)
		}
	}

	recordActivity(ctx, s.repo, user.ID, "delete_folder", fmt.Sprintf("Deleted folder '%s'", folder.Name))
	return nil
}

// FolderFiles lists the images or the PDFs of a folder with their URLs and metadata.
func (s *LibraryService) FolderFiles(ctx context.Context, user *model.User, folderID int64, kind FileKind) ([]model.FileItem, error) {
	folder, err := s.ownedFolder(ctx, user, folderID)
	if err != nil {
		return nil, err
	}
	files, err := s.repo.ListFiles(ctx, folder.ID)
	if err != nil {
		return nil, fmt.Errorf("could not list files: %w", err)
	}

	out := []model.FileItem{}
	for _, f := range files {
		if (kind == KindImages && media.IsImage(f.FileType)) || (kind == KindPDFs && media.IsPDF(f.FileType)) {
			out = append(out, s.toItem(f))
		}
	}
	return out, nil
}

// --- Files ---

// Upload stores a new file in the folder and records its metadata.
func (s *LibraryService) Upload(ctx context.Context, user *model.User, folderID int64, in UploadInput) (*model.FileItem, error) {
	folder, err := s.ownedFolder(ctx, user, folderID)
	if err != nil {
		return nil, err
	}

	name := storage.SafeName(in.Filename)
	fileType := media.FileType(name)
	if strings.TrimSpace(in.Filename) == "" || !media.Allowed(fileType) {
		return nil, fmt.Errorf("%w: file type not allowed, use png, jpg, jpeg, gif, webp or pdf", app_errors.ErrValidation)
	}

	// Read one byte past the limit to detect oversize uploads.
	rel, size, err := s.store.Save(user.ID, name, io.LimitReader(in.Content, s.maxUpload+1))
	if err != nil {
		return nil, fmt.Errorf("could not store upload: %w", err)
	}
	if size > s.maxUpload {
		s.discard(rel)
		return nil, fmt.Errorf("%w: file exceeds %s", app_errors.ErrTooLarge, media.HumanSize(s.maxUpload))
	}

	uploadedAt := time.Now().UTC()
	metadata, err := s.extract(rel, size, fileType, uploadedAt)
	if err != nil {
		s.discard(rel)
		return nil, err
	}

	file := &model.File{
		FolderID:    folder.ID,
		Filename:    name,
		FileType:    fileType,
		Path:        rel,
		Description: strings.TrimSpace(in.Description),
		Metadata:    metadata,
		UploadedAt:  uploadedAt,
	}
	if err := s.repo.CreateFile(ctx, file); err != nil {
		s.discard(rel)
		return nil, fmt.Errorf("could not save file record: %w", err)
	}

	slog.Info("Stored upload", "file_id", file.ID, "folder_id", folder.ID, "file_type", fileType, "bytes", size)
	recordActivity(ctx, s.repo, user.ID, "upload", fmt.Sprintf("Uploaded '%s' to folder '%s'", name, folder.Name))
	item := s.toItem(file)
	return &item, nil
}

func (s *LibraryService) extract(rel string, size int64, fileType string, uploadedAt time.Time) (map[string]any, error) {
	f, err := s.store.Open(rel)
	if err != nil {
		return nil, fmt.Errorf("could not reopen upload: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close upload after metadata extraction", "path", rel, "error", err)
		}
	}()
	return media.Extract(f, size, fileType, uploadedAt), nil
}

func (s *LibraryService) discard(rel string) {
	if err := s.store.Remove(rel); err != nil {
		slog.Warn("Failed to remove rejected upload", "path", rel, "error", err)
	}
}

func (s *LibraryService) GetFile(ctx context.Context, user *model.User, fileID int64) (*model.FileItem, error) {
	file, _, err := s.ownedFile(ctx, user, fileID)
	if err != nil {
		return nil, err
	}
	item := s.toItem(file)
	return &item, nil
}

func (s *LibraryService) DeleteFile(ctx context.Context, user *model.User, fileID int64) error {
	file, folder, err := s.ownedFile(ctx, user, fileID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteFile(ctx, file.ID); err != nil {
		return translateRepoErr(err, "file", file.ID)
	}
	if err := s.store.Remove(file.Path); err != nil {
		slog.Warn("Failed to remove stored file", "file_id", file.ID, "path", file.Path, "error", err)
	}

	recordActivity(ctx, s.repo, user.ID, "delete_file", fmt.Sprintf("Deleted '%s' from folder '%s'", file.Filename, folder.Name))
	return nil
}

// PDFText extracts the text of a stored PDF. Unparseable documents yield "".
func (s *LibraryService) PDFText(ctx context.Context, user *model.User, fileID int64) (*model.FileItem, error) {
	file, _, err := s.ownedFile(ctx, user, fileID)
	if err != nil {
		return nil, err
	}
	if !media.IsPDF(file.FileType) {
		return nil, fmt.Errorf("%w: file %d is not a PDF", app_errors.ErrValidation, file.ID)
	}

	f, err := s.store.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open stored PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	size, err := s.store.Size(file.Path)
	if err != nil {
		return nil, fmt.Errorf("could not stat stored PDF: %w", err)
	}

	return &model.FileItem{
		ID:       file.ID,
		Filename: file.Filename,
		Text:     media.PDFText(f, size),
	}, nil
}

// Search matches query against filenames and descriptions in all of the user's folders.
func (s *LibraryService) Search(ctx context.Context, user *model.User, query string) ([]model.FileItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", app_errors.ErrValidation)
	}
	files, err := s.repo.SearchFiles(ctx, user.ID, query)
	if err != nil {
		return nil, fmt.Errorf("could not search files: %w", err)
	}
	out := make([]model.FileItem, len(files))
	for i, f := range files {
		item := s.toItem(f)
		item.Metadata = nil
		out[i] = item
	}
	return out, nil
}

// --- Helper Functions ---

func (s *LibraryService) ownedFolder(ctx context.Context, user *model.User, folderID int64) (*model.Folder, error) {
	folder, err := s.repo.GetFolder(ctx, folderID)
	if err != nil {
		return nil, translateRepoErr(err, "folder", folderID)
	}
	if folder.UserID != user.ID {
		return nil, fmt.Errorf("%w: folder %d", app_errors.ErrPermission, folderID)
	}
	return folder, nil
}

func (s *LibraryService) ownedFile(ctx context.Context, user *model.User, fileID int64) (*model.File, *model.Folder, error) {
	file, err := s.repo.GetFile(ctx, fileID)
	if err != nil {
		return nil, nil, translateRepoErr(err, "file", fileID)
	}
	folder, err := s.ownedFolder(ctx, user, file.FolderID)
	if err != nil {
		return nil, nil, err
	}
	return file, folder, nil
}

func (s *LibraryService) toItem(f *model.File) model.FileItem {
	return model.FileItem{
		ID:          f.ID,
		Filename:    f.Filename,
		FileType:    f.FileType,
		Description: f.Description,
		URL:         s.baseURL + "/static/uploads/" + f.Path,
		UploadedAt:  formatTime(f.UploadedAt),
		Metadata:    f.Metadata,
	}
}

func summarize(f *model.Folder) model.FolderSummary {
	return model.FolderSummary{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: formatTime(f.CreatedAt),
		IsPublic:  f.IsPublic,
		FileCount: f.FileCount,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(model.TimeLayout)
}

func translateRepoErr(err error, kind string, id int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s %d", app_errors.ErrNotFound, kind, id)
	}
	return fmt.Errorf("could not load %s %d: %w", kind, id, err)
}
