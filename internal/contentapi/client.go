package contentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"imagevault/internal/model"
)

// Client reads a user's library from the content service on behalf of the
// chatbot. Every read is fail-soft: transport errors, non-200 responses and
// undecodable bodies are logged and turned into empty results, so callers
// cannot tell an outage from an empty library.
type Client interface {
	ListFolders(ctx context.Context, apiKey string) []model.FolderSummary
	GetFolder(ctx context.Context, apiKey string, folderID int64) (*model.FolderDetail, bool)
	FolderImages(ctx context.Context, apiKey string, folderID int64) []model.FileItem
	FolderPDFs(ctx context.Context, apiKey string, folderID int64) []model.FileItem
	AllImages(ctx context.Context, apiKey string) []model.FileItem
	AllPDFs(ctx context.Context, apiKey string) []model.FileItem
	Search(ctx context.Context, apiKey, query string) []model.FileItem
	GetFile(ctx context.Context, apiKey string, fileID int64) (*model.FileItem, bool)
	PDFText(ctx context.Context, apiKey string, fileID int64) (string, bool)

	// VerifyKey is the only call that reports failure: false with a nil
	// error means the service rejected the key, a non-nil error means the
	// service could not be asked.
	VerifyKey(ctx context.Context, apiKey string) (bool, error)
}

type httpClient struct {
	client *http.Client
	url    string
	fanout int
}

// NewClient returns a Client for the content service at baseURL. fanout
// bounds the per-folder requests issued concurrently by AllImages and AllPDFs.
func NewClient(baseURL string, timeout time.Duration, fanout int) Client {
	if fanout < 1 {
		fanout = 1
	}
	return &httpClient{
		client: &http.Client{Timeout: timeout},
		url:    strings.TrimRight(baseURL, "/"),
		fanout: fanout,
	}
}

// envelope is the wrapper every content service response uses.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

func (c *httpClient) ListFolders(ctx context.Context, apiKey string) []model.FolderSummary {
	var folders []model.FolderSummary
	if err := c.get(ctx, apiKey, "/api/folders", nil, &folders); err != nil {
		slog.Warn("Discarding folder list after content API failure", "error", err)
		return []model.FolderSummary{}
	}
	if folders == nil {
		return []model.FolderSummary{}
	}
	return folders
}

func (c *httpClient) GetFolder(ctx context.Context, apiKey string, folderID int64) (*model.FolderDetail, bool) {
	var folder model.FolderDetail
	if err := c.get(ctx, apiKey, "/api/folder/"+strconv.FormatInt(folderID, 10), nil, &folder); err != nil {
		slog.Warn("Discarding folder after content API failure", "folder_id", folderID, "error", err)
		return nil, false
	}
	return &folder, true
}

func (c *httpClient) FolderImages(ctx context.Context, apiKey string, folderID int64) []model.FileItem {
	return c.folderFiles(ctx, apiKey, folderID, "images")
}

func (c *httpClient) FolderPDFs(ctx context.Context, apiKey string, folderID int64) []model.FileItem {
	return c.folderFiles(ctx, apiKey, folderID, "pdfs")
}

func (c *httpClient) AllImages(ctx context.Context, apiKey string) []model.FileItem {
	return c.aggregate(ctx, apiKey, "images")
}

func (c *httpClient) AllPDFs(ctx context.Context, apiKey string) []model.FileItem {
	return c.aggregate(ctx, apiKey, "pdfs")
}

func (c *httpClient) Search(ctx context.Context, apiKey, query string) []model.FileItem {
	var items []model.FileItem
	if err := c.get(ctx, apiKey, "/api/search", url.Values{"q": {query}}, &items); err != nil {
		slog.Warn("Discarding search results after content API failure", "query", query, "error", err)
		return []model.FileItem{}
	}
	return nonNil(items)
}

func (c *httpClient) GetFile(ctx context.Context, apiKey string, fileID int64) (*model.FileItem, bool) {
	var item model.FileItem
	if err := c.get(ctx, apiKey, "/api/image/"+strconv.FormatInt(fileID, 10), nil, &item); err != nil {
		slog.Warn("Discarding file after content API failure", "file_id", fileID, "error", err)
		return nil, false
	}
	return &item, true
}

func (c *httpClient) PDFText(ctx context.Context, apiKey string, fileID int64) (string, bool) {
	var item model.FileItem
	if err := c.get(ctx, apiKey, "/api/pdf/"+strconv.FormatInt(fileID, 10)+"/text", nil, &item); err != nil {
		slog.Warn("Discarding PDF text after content API failure", "file_id", fileID, "error", err)
		return "", false
	}
	return item.Text, true
}

func (c *httpClient) VerifyKey(ctx context.Context, apiKey string) (bool, error) {
	resp, err := c.do(ctx, apiKey, "/api/folders", nil)
	if err != nil {
		return false, err
	}
	defer closeBody(resp)
	return resp.StatusCode == http.StatusOK, nil
}

func (c *httpClient) folderFiles(ctx context.Context, apiKey string, folderID int64, kind string) []model.FileItem {
	var items []model.FileItem
	path := "/api/folder/" + strconv.FormatInt(folderID, 10) + "/" + kind
	if err := c.get(ctx, apiKey, path, nil, &items); err != nil {
		slog.Warn("Discarding folder files after content API failure", "folder_id", folderID, "kind", kind, "error", err)
		return []model.FileItem{}
	}
	return nonNil(items)
}

// aggregate fetches kind from every folder and concatenates the results in
// the order ListFolders returned the folders. Each item is annotated with
// its source folder. A failing folder contributes nothing.
func (c *httpClient) aggregate(ctx context.Context, apiKey, kind string) []model.FileItem {
	folders := c.ListFolders(ctx, apiKey)
	perFolder := make([][]model.FileItem, len(folders))

	var g errgroup.Group
	g.SetLimit(c.fanout)
	for i, folder := range folders {
		g.Go(func() error {
			items := c.folderFiles(ctx, apiKey, folder.ID, kind)
			for j := range items {
				items[j].FolderName = folder.Name
				items[j].FolderID = folder.ID
			}
			perFolder[i] = items
			return nil
		})
	}
	_ = g.Wait()

	all := []model.FileItem{}
	for _, items := range perFolder {
		all = append(all, items...)
	}
	return all
}

func (c *httpClient) get(ctx context.Context, apiKey, path string, query url.Values, out any) error {
	resp, err := c.do(ctx, apiKey, path, query)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return fmt.Errorf("could not decode response envelope: %w", err)
	}
	if env.Status != "success" {
		return fmt.Errorf("api reported %q: %s", env.Status, env.Message)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("could not decode response data: %w", err)
	}
	return nil
}

func (c *httpClient) do(ctx context.Context, apiKey, path string, query url.Values) (*http.Response, error) {
	endpoint := c.url + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	return resp, nil
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		slog.Warn("Failed to close content API response body", "error", err)
	}
}

func nonNil(items []model.FileItem) []model.FileItem {
	if items == nil {
		return []model.FileItem{}
	}
	return items
}
