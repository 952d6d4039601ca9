package model

import (
	"time"
)

// User owns folders and authenticates API calls with APIKey.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	APIKey       string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Folder is a named container of files belonging to one user.
type Folder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	IsPublic  bool      `json:"is_public"`
	FileCount int       `json:"file_count"`
}

// File is a stored upload. Path is relative to the upload root and never
// leaves the server; clients get a URL instead.
type File struct {
	ID          int64          `json:"id"`
	FolderID    int64          `json:"folder_id"`
	Filename    string         `json:"filename"`
	FileType    string         `json:"file_type"`
	Path        string         `json:"-"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	UploadedAt  time.Time      `json:"uploaded_at"`
}

// ActivityLog records a mutating action for auditing.
type ActivityLog struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestamp"`
}

// FolderSummary is one entry of GET /api/folders.
type FolderSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
	IsPublic  bool   `json:"is_public"`
	FileCount int    `json:"file_count"`
}

// FolderDetail is a folder together with its files, as served by
// GET /api/folder/{id}.
type FolderDetail struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt string     `json:"created_at"`
	IsPublic  bool       `json:"is_public"`
	Files     []FileItem `json:"files"`
}

// FileItem is the read-only projection of a file exchanged over the REST
// API and handed to chat users. FolderName and FolderID are filled in by
// the chat client when it aggregates across folders.
type FileItem struct {
	ID          int64          `json:"id"`
	Filename    string         `json:"filename"`
	FileType    string         `json:"file_type,omitempty"`
	Description string         `json:"description"`
	URL         string         `json:"url,omitempty"`
	UploadedAt  string         `json:"uploaded_at,omitempty"`
	FolderName  string         `json:"folder_name,omitempty"`
	FolderID    int64          `json:"folder_id,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Text        string         `json:"text,omitempty"`
}

// UploadTime returns UploadedAt, or the uploaded_at recorded in the
// metadata when the listing did not carry one.
func (f FileItem) UploadTime() string {
	if f.UploadedAt != "" {
		return f.UploadedAt
	}
	if v, ok := f.Metadata["uploaded_at"].(string); ok {
		return v
	}
	return ""
}

// Timestamp layout used on the wire, matching ISO-8601 without zone so that
// lexical order equals chronological order.
const TimeLayout = "2006-01-02T15:04:05"
