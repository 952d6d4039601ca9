package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagevault/internal/database"
	"imagevault/internal/model"
	"imagevault/internal/repository"
)

func setupMockRepo(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteRepository(db), mockDB
}

func TestSQLiteRepository_GetUserByAPIKey(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo, mockDB := setupMockRepo(t)
		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "api_key", "created_at"}).
			AddRow(7, "alice", "alice@example.com", "hash", "key-1", created)
		mockDB.ExpectQuery(regexp.QuoteMeta("FROM users WHERE api_key = ?")).WithArgs("key-1").WillReturnRows(rows)

		user, err := repo.GetUserByAPIKey(ctx, "key-1")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mockDB := setupMockRepo(t)
		mockDB.ExpectQuery(regexp.QuoteMeta("FROM users WHERE api_key = ?")).WithArgs("nope").WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByAPIKey(ctx, "nope")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSQLiteRepository_ListFolders(t *testing.T) {
	ctx := context.Background()
	repo, mockDB := setupMockRepo(t)
	created := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "created_at", "is_public", "count"}).
		AddRow(1, 7, "vacation", created, false, 3).
		AddRow(2, 7, "work", created, true, 0)
	mockDB.ExpectQuery("SELECT f.id, f.user_id, f.name").WithArgs(int64(7)).WillReturnRows(rows)

	folders, err := repo.ListFolders(ctx, 7)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "vacation", folders[0].Name)
	assert.Equal(t, 3, folders[0].FileCount)
	assert.True(t, folders[1].IsPublic)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_CreateFile(t *testing.T) {
	ctx := context.Background()
	repo, mockDB := setupMockRepo(t)

	file := &model.File{
		FolderID:   3,
		Filename:   "beach.png",
		FileType:   "png",
		Path:       "7/abc_beach.png",
		Metadata:   map[string]any{"dimensions": "10x20"},
		UploadedAt: time.Now().UTC(),
	}
	mockDB.ExpectExec("INSERT INTO files").
		WithArgs(int64(3), "beach.png", "png", "7/abc_beach.png", "", `{"dimensions":"10x20"}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	require.NoError(t, repo.CreateFile(ctx, file))
	assert.Equal(t, int64(42), file.ID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_GetFile_DecodesMetadata(t *testing.T) {
	ctx := context.Background()
	repo, mockDB := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "folder_id", "filename", "file_type", "file_path", "description", "metadata_json", "uploaded_at"}).
		AddRow(5, 1, "doc.pdf", "pdf", "7/x_doc.pdf", "report", `{"page_count":4}`, time.Now())
	mockDB.ExpectQuery(regexp.QuoteMeta("FROM files WHERE id = ?")).WithArgs(int64(5)).WillReturnRows(rows)

	f, err := repo.GetFile(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "doc.pdf", f.Filename)
	assert.Equal(t, float64(4), f.Metadata["page_count"])
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_DeleteFolder_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, mockDB := setupMockRepo(t)

	mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM folders WHERE id = ?")).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteFolder(ctx, 9)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_SearchFiles_EscapesPattern(t *testing.T) {
	ctx := context.Background()
	repo, mockDB := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "folder_id", "filename", "file_type", "file_path", "description", "metadata_json", "uploaded_at"})
	mockDB.ExpectQuery("FROM files fi").WithArgs(int64(7), `%50\%%`, `%50\%%`).WillReturnRows(rows)

	files, err := repo.SearchFiles(ctx, 7, "50%")
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

// TestSQLiteRepository_RealDatabase runs the repository against a migrated
// SQLite file to cover the SQL itself, including cascades and uniqueness.
func TestSQLiteRepository_RealDatabase(t *testing.T) {
	ctx := context.Background()
	db, err := database.InitDB(t.TempDir() + "/repo.db")
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	repo := repository.NewSQLiteRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	user := &model.User{Username: "alice", Email: "a@example.com", PasswordHash: "h", APIKey: "k1", CreatedAt: now}
	require.NoError(t, repo.CreateUser(ctx, user))

	dup := &model.User{Username: "alice", Email: "other@example.com", PasswordHash: "h", APIKey: "k2", CreatedAt: now}
	assert.ErrorIs(t, repo.CreateUser(ctx, dup), repository.ErrDuplicate)

	folder := &model.Folder{UserID: user.ID, Name: "Vacation", CreatedAt: now}
	require.NoError(t, repo.CreateFolder(ctx, folder))

	for _, name := range []string{"beach.png", "notes.pdf"} {
		f := &model.File{FolderID: folder.ID, Filename: name, FileType: name[len(name)-3:], Path: "p/" + name, Description: "summer trip", Metadata: map[string]any{}, UploadedAt: now}
		require.NoError(t, repo.CreateFile(ctx, f))
	}

	folders, err := repo.ListFolders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, 2, folders[0].FileCount)

	found, err := repo.SearchFiles(ctx, user.ID, "BEACH")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "beach.png", found[0].Filename)

	byDesc, err := repo.SearchFiles(ctx, user.ID, "summer")
	require.NoError(t, err)
	assert.Len(t, byDesc, 2)

	require.NoError(t, repo.DeleteFolder(ctx, folder.ID))
	files, err := repo.ListFiles(ctx, folder.ID)
	require.NoError(t, err)
	assert.Empty(t, files, "files should cascade with their folder")

	uid := user.ID
	require.NoError(t, repo.AddActivity(ctx, &model.ActivityLog{UserID: &uid, Action: "delete_folder", Timestamp: now}))
}
