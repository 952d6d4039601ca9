package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"imagevault/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

// --- Users ---

const userColumns = "id, username, email, password_hash, api_key, created_at"

func (r *sqliteRepository) CreateUser(ctx context.Context, user *model.User) error {
	query := "INSERT INTO users (username, email, password_hash, api_key, created_at) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.APIKey, user.CreatedAt)
	if err != nil {
		return translateErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read user id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *sqliteRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUser(ctx, "username = ?", username)
}

func (r *sqliteRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getUser(ctx, "email = ?", email)
}

func (r *sqliteRepository) GetUserByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	return r.getUser(ctx, "api_key = ?", apiKey)
}

func (r *sqliteRepository) getUser(ctx context.Context, where string, arg any) (*model.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE " + where
	var u model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.APIKey, &u.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

func (r *sqliteRepository) UpdateAPIKey(ctx context.Context, userID int64, apiKey string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE users SET api_key = ? WHERE id = ?", apiKey, userID)
	if err != nil {
		return translateErr(err)
	}
	return requireRow(res)
}

// --- Folders ---

const folderSelect = `
	SELECT f.id, f.user_id, f.name, f.created_at, f.is_public, COUNT(fi.id)
	FROM folders f
	LEFT JOIN files fi ON fi.folder_id = f.id
`

func (r *sqliteRepository) CreateFolder(ctx context.Context, folder *model.Folder) error {
	query := "INSERT INTO folders (user_id, name, created_at, is_public) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, query, folder.UserID, folder.Name, folder.CreatedAt, folder.IsPublic)
	if err != nil {
		return translateErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read folder id: %w", err)
	}
	folder.ID = id
	return nil
}

func (r *sqliteRepository) GetFolder(ctx context.Context, folderID int64) (*model.Folder, error) {
	query := folderSelect + " WHERE f.id = ? GROUP BY f.id"
	var f model.Folder
	err := r.db.QueryRowContext(ctx, query, folderID).Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt, &f.IsPublic, &f.FileCount)
	if err != nil {
		return nil, translateErr(err)
	}
	return &f, nil
}

func (r *sqliteRepository) ListFolders(ctx context.Context, userID int64) ([]*model.Folder, error) {
	query := folderSelect + " WHERE f.user_id = ? GROUP BY f.id ORDER BY f.id ASC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	folders := []*model.Folder{}
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt, &f.IsPublic, &f.FileCount); err != nil {
			return nil, err
		}
		folders = append(folders, &f)
	}
	return folders, rows.Err()
}

// DeleteFolder removes the folder; its files go with it through ON DELETE CASCADE.
func (r *sqliteRepository) DeleteFolder(ctx context.Context, folderID int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", folderID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// --- Files ---

const fileColumns = "id, folder_id, filename, file_type, file_path, description, metadata_json, uploaded_at"

func (r *sqliteRepository) CreateFile(ctx context.Context, file *model.File) error {
	metadata, err := json.Marshal(file.Metadata)
	if err != nil {
		return fmt.Errorf("could not marshal file metadata: %w", err)
	}
	query := `
		INSERT INTO files (folder_id, filename, file_type, file_path, description, metadata_json, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		file.FolderID,
		file.Filename,
		file.FileType,
		file.Path,
		file.Description,
		string(metadata),
		file.UploadedAt,
	)
	if err != nil {
		return translateErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read file id: %w", err)
	}
	file.ID = id
	return nil
}

func (r *sqliteRepository) GetFile(ctx context.Context, fileID int64) (*model.File, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+fileColumns+" FROM files WHERE id = ?", fileID)
	f, err := scanFile(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return f, nil
}

func (r *sqliteRepository) ListFiles(ctx context.Context, folderID int64) ([]*model.File, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+fileColumns+" FROM files WHERE folder_id = ? ORDER BY id ASC", folderID)
	if err != nil {
		return nil, err
	}
	return collectFiles(rows)
}

func (r *sqliteRepository) DeleteFile(ctx context.Context, fileID int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM files WHERE id = ?", fileID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SearchFiles matches query as a substring of filename or description across
// all folders owned by userID. LIKE is case-insensitive for ASCII in SQLite.
func (r *sqliteRepository) SearchFiles(ctx context.Context, userID int64, query string) ([]*model.File, error) {
	pattern := "%" + escapeLike(query) + "%"
	q := `
		SELECT fi.id, fi.folder_id, fi.filename, fi.file_type, fi.file_path, fi.description, fi.metadata_json, fi.uploaded_at
		FROM files fi
		JOIN folders f ON f.id = fi.folder_id
		WHERE f.user_id = ? AND (fi.filename LIKE ? ESCAPE '\' OR fi.description LIKE ? ESCAPE '\')
		ORDER BY fi.id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, userID, pattern, pattern)
	if err != nil {
		return nil, err
	}
	return collectFiles(rows)
}

// --- Activity ---

func (r *sqliteRepository) AddActivity(ctx context.Context, entry *model.ActivityLog) error {
	query := "INSERT INTO activity_logs (user_id, action, details, ip_address, timestamp) VALUES (?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, entry.UserID, entry.Action, entry.Details, entry.IPAddress, entry.Timestamp)
	return err
}

// --- Helper Functions ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(row rowScanner) (*model.File, error) {
	var f model.File
	var metadata sql.NullString
	if err := row.Scan(&f.ID, &f.FolderID, &f.Filename, &f.FileType, &f.Path, &f.Description, &metadata, &f.UploadedAt); err != nil {
		return nil, err
	}
	f.Metadata = map[string]any{}
	if metadata.Valid && metadata.String != "" {
		if err := json.Unmarshal([]byte(metadata.String), &f.Metadata); err != nil {
			return nil, fmt.Errorf("could not decode metadata of file %d: %w", f.ID, err)
		}
	}
	return &f, nil
}

func collectFiles(rows *sql.Rows) ([]*model.File, error) {
	defer rows.Close()
	files := []*model.File{}
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func translateErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %s", ErrDuplicate, sqliteErr.Error())
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
