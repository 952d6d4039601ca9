package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	app_errors "imagevault/internal/errors"
	"imagevault/internal/interfaces"
	"imagevault/internal/media"
	"imagevault/internal/service"
)

// multipartOverhead is allowed on top of the file size limit for the form
// boundaries and the description field.
const multipartOverhead = 1 << 20

// LibraryHandler serves folders, files and search for the authenticated user.
type LibraryHandler struct {
	library   interfaces.LibraryService
	maxUpload int64
}

func NewLibraryHandler(library interfaces.LibraryService, maxUpload int64) *LibraryHandler {
	return &LibraryHandler{library: library, maxUpload: maxUpload}
}

// InfoResponse describes the API at GET /api.
type InfoResponse struct {
	Name      string            `json:"name" example:"Image API"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
}

// HandleInfo godoc
// @Summary      API information
// @Tags         Info
// @Produce      json
// @Success      200  {object}  InfoResponse
// @Router       / [get]
func (h *LibraryHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, InfoResponse{
		Name:    "Image API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"folders": "/api/folders",
			"search":  "/api/search",
			"images":  "/api/folder/{id}/images",
			"pdfs":    "/api/folder/{id}/pdfs",
		},
	})
}

// HandleListFolders godoc
// @Summary      List folders
// @Tags         Folders
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  SuccessResponse{data=[]model.FolderSummary}
// @Failure      401  {object}  ErrorResponse
// @Router       /folders [get]
func (h *LibraryHandler) HandleListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.library.ListFolders(r.Context(), currentUser(r))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "", folders)
}

// HandleCreateFolder godoc
// @Summary      Create a folder
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request  body      service.CreateFolderRequest  true  "Folder"
// @Success      201      {object}  SuccessResponse{data=model.FolderSummary}
// @Failure      400      {object}  ErrorResponse
// @Router       /folders [post]
func (h *LibraryHandler) HandleCreateFolder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	folder, err := h.library.CreateFolder(r.Context(), currentUser(r), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusCreated, "Folder created successfully", folder)
}

// HandleGetFolder godoc
// @Summary      Get a folder with its files
// @Tags         Folders
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      int  true  "Folder ID"
// @Success      200  {object}  SuccessResponse{data=model.FolderDetail}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /folder/{id} [get]
func (h *LibraryHandler) HandleGetFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	folder, err := h.library.GetFolder(r.Context(), currentUser(r), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "", folder)
}

// HandleDeleteFolder godoc
// @Summary      Delete a folder
// @Description  Deletes the folder, its files and their stored content.
// @Tags         Folders
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      int  true  "Folder ID"
// @Success      200  {object}  SuccessResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /folder/{id} [delete]
func (h *LibraryHandler) HandleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.library.DeleteFolder(r.Context(), currentUser(r), id); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "Folder deleted successfully", nil)
}

// HandleFolderImages godoc
// @Summary      List a folder's images
// @Tags         Folders
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      int  true  "Folder ID"
// @Success      200  {object}  SuccessResponse{data=[]model.FileItem}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /folder/{id}/images [get]
func (h *LibraryHandler) HandleFolderImages(w http.ResponseWriter, r *http.Request) {
	h.folderFiles(w, r, service.KindImages)
}

// HandleFolderPDFs godoc
// @Summary      List a folder's PDFs
// @Tags         Folders
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      int  true  "Folder ID"
// @Success      200  {object}  SuccessResponse{data=[]model.FileItem}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /folder/{id}/pdfs [get]
func (h *LibraryHandler) HandleFolderPDFs(w http.ResponseWriter, r *http.Request) {
	h.folderFiles(w, r, service.KindPDFs)
}

func (h *LibraryHandler) folderFiles(w http.ResponseWriter, r *http.Request, kind service.FileKind) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	files, err := h.library.FolderFiles(r.Context(), currentUser(r), id, kind)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "", files)
}

// HandleUpload godoc
// @Summary      Upload a file
// @Description  Stores an image (png, jpg, jpeg, gif, webp) or a PDF in the folder.
// @Tags         Files
// @Accept       multipart/form-data
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id           path      int     true   "Folder ID"
// @Param        file         formData  file    true   "File to upload"
// @Param        description  formData  string  false  "Description"
// @Success      200          {object}  SuccessResponse{data=model.FileItem}
// @Failure      400          {object}  ErrorResponse
// @Failure      403          {object}  ErrorResponse
// @Failure      413          {object}  ErrorResponse
// @Router       /folder/{id}/upload [post]
func (h *LibraryHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, fmt.Errorf("%w: file too large (max %s)", app_errors.ErrTooLarge, media.HumanSize(h.maxUpload)))
			return
		}
		respondWithError(w, fmt.Errorf("%w: no file provided", app_errors.ErrValidation))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			slog.Warn("Failed to remove multipart temp files", "error", err)
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: no file provided", app_errors.ErrValidation))
		return
	}
	defer func() { _ = file.Close() }()
	if header.Filename == "" {
		respondWithError(w, fmt.Errorf("%w: no file selected", app_errors.ErrValidation))
		return
	}

	item, err := h.library.Upload(r.Context(), currentUser(r), id, service.UploadInput{
		Filename:    header.Filename,
		Description: r.FormValue("description"),
		Content:     file,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "File uploaded successfully", item)
}

// HandleGetFile godoc
// @Summary      Get an image or PDF
// @Tags         Files
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      int  true  "File ID"
// @Success      200  {object}  SuccessResponse{data=model.FileItem}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /image/{id} [get]
// @Router       /pdf/{id} [get]
func (h *LibraryHandler) HandleGetFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	item, err := h.library.GetFile(r.Context(), currentUser(r), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "", item)
}

// HandlePDFText godoc
// @Summary      Extract PDF text
// @Tags         Files
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      int  true  "File ID"
// @Success      200  {object}  SuccessResponse{data=model.FileItem}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /pdf/{id}/text [get]
func (h *LibraryHandler) HandlePDFText(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	item, err := h.library.PDFText(r.Context(), currentUser(r), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "", item)
}

// HandleDeleteFile godoc
// @Summary      Delete a file
// @Tags         Files
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      int  true  "File ID"
// @Success      200  {object}  SuccessResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /file/{id} [delete]
func (h *LibraryHandler) HandleDeleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.library.DeleteFile(r.Context(), currentUser(r), id); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "File deleted successfully", nil)
}

// HandleSearch godoc
// @Summary      Search files
// @Description  Matches filenames and descriptions across all of the caller's folders.
// @Tags         Files
// @Produce      json
// @Security     ApiKeyAuth
// @Param        q    query     string  true  "Search term"
// @Success      200  {object}  SuccessResponse{data=[]model.FileItem}
// @Failure      400  {object}  ErrorResponse
// @Router       /search [get]
func (h *LibraryHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	files, err := h.library.Search(r.Context(), currentUser(r), r.URL.Query().Get("q"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, "", files)
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id '%s'", app_errors.ErrValidation, raw)
	}
	return id, nil
}
