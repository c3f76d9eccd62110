package v1

import (
	"errors"
	"io"
	"net/http"

	"profile-editor/internal/delivery/http/middleware"
	"profile-editor/internal/delivery/http/response"
	"profile-editor/internal/domain"
	"profile-editor/pkg/apperror"
	"profile-editor/pkg/preview"
	"profile-editor/pkg/security"
	"profile-editor/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC      domain.ProfileUsecase
	previews       domain.PreviewReader
	maxUploadBytes int64
}

// SetFieldRequest carries a new text value
type SetFieldRequest struct {
	Value *string `json:"value" binding:"required"`
}

// ResumeModeRequest selects the active resume representation
type ResumeModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=file link"`
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase, previews domain.PreviewReader, maxUploadBytes int64) {
	handler := &ProfileHandler{
		profileUC:      profileUC,
		previews:       previews,
		maxUploadBytes: maxUploadBytes,
	}

	profile := r.Group("/profile")
	{
		profile.GET("", handler.GetState)
		profile.PUT("/fields/:name", handler.SetField)
		profile.POST("/fields/:name/file", handler.SetFile)
		profile.DELETE("/fields/:name/file", handler.ClearFile)
		profile.POST("/fields/:name/blur", handler.Blur)
		profile.PUT("/resume-mode", handler.ToggleResumeMode)
		profile.POST("/submit", handler.Submit)
		profile.POST("/cancel", handler.Cancel)
		profile.POST("/edit", handler.Edit)
		profile.GET("/previews/:id", handler.GetPreview)
	}
}

// GetState godoc
// @Summary      Get editor state
// @Description  Current mode, form draft with visible errors, or the committed profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EditorState}
// @Router       /profile [get]
func (h *ProfileHandler) GetState(c *gin.Context) {
	state, err := h.profileUC.State(c.Request.Context(), sessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Editor state", state)
}

// SetField godoc
// @Summary      Change a text field
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        name     path      string           true  "Field name"
// @Param        request  body      SetFieldRequest  true  "New value"
// @Success      200      {object}  response.Response{data=domain.EditorState}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /profile/fields/{name} [put]
func (h *ProfileHandler) SetField(c *gin.Context) {
	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	state, err := h.profileUC.SetField(c.Request.Context(), sessionID(c), c.Param("name"), *req.Value)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Field updated", state)
}

// SetFile godoc
// @Summary      Choose a file for a file field
// @Description  Multipart upload in form field "file". Omitting the file clears the selection.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        name  path      string  true   "Field name (resumeFile or profilePicture)"
// @Param        file  formData  file    false  "Selected file"
// @Success      200   {object}  response.Response{data=domain.EditorState}
// @Failure      400   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Router       /profile/fields/{name}/file [post]
func (h *ProfileHandler) SetFile(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	blob, err := h.readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	state, err := h.profileUC.SetFile(c.Request.Context(), sessionID(c), c.Param("name"), blob)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File updated", state)
}

// ClearFile godoc
// @Summary      Clear a file field
// @Tags         profile
// @Produce      json
// @Param        name  path      string  true  "Field name (resumeFile or profilePicture)"
// @Success      200   {object}  response.Response{data=domain.EditorState}
// @Router       /profile/fields/{name}/file [delete]
func (h *ProfileHandler) ClearFile(c *gin.Context) {
	state, err := h.profileUC.SetFile(c.Request.Context(), sessionID(c), c.Param("name"), nil)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File cleared", state)
}

// Blur godoc
// @Summary      Mark a field as touched
// @Tags         profile
// @Produce      json
// @Param        name  path      string  true  "Field name"
// @Success      200   {object}  response.Response{data=domain.EditorState}
// @Router       /profile/fields/{name}/blur [post]
func (h *ProfileHandler) Blur(c *gin.Context) {
	state, err := h.profileUC.Blur(c.Request.Context(), sessionID(c), c.Param("name"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Field touched", state)
}

// ToggleResumeMode godoc
// @Summary      Switch between resume file and resume link
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      ResumeModeRequest  true  "Mode"
// @Success      200      {object}  response.Response{data=domain.EditorState}
// @Failure      400      {object}  response.Response
// @Router       /profile/resume-mode [put]
func (h *ProfileHandler) ToggleResumeMode(c *gin.Context) {
	var req ResumeModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	state, err := h.profileUC.ToggleResumeMode(c.Request.Context(), sessionID(c), req.Mode)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume mode updated", state)
}

// Submit godoc
// @Summary      Submit the form
// @Description  Commits the draft and switches to the read-only view, or returns field errors
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EditorState}
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /profile/submit [post]
func (h *ProfileHandler) Submit(c *gin.Context) {
	state, err := h.profileUC.Submit(c.Request.Context(), sessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", state)
}

// Cancel godoc
// @Summary      Discard the draft
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EditorState}
// @Failure      409  {object}  response.Response
// @Router       /profile/cancel [post]
func (h *ProfileHandler) Cancel(c *gin.Context) {
	state, err := h.profileUC.Cancel(c.Request.Context(), sessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Changes discarded", state)
}

// Edit godoc
// @Summary      Edit the saved profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EditorState}
// @Failure      409  {object}  response.Response
// @Router       /profile/edit [post]
func (h *ProfileHandler) Edit(c *gin.Context) {
	state, err := h.profileUC.Edit(c.Request.Context(), sessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Editing profile", state)
}

// GetPreview godoc
// @Summary      Profile picture preview
// @Description  Serves a preview handle owned by the caller's session
// @Tags         profile
// @Produce      jpeg
// @Param        id   path  string  true  "Preview handle"
// @Success      200
// @Failure      404  {object}  response.Response
// @Router       /profile/previews/{id} [get]
func (h *ProfileHandler) GetPreview(c *gin.Context) {
	id := c.Param("id")

	state, err := h.profileUC.State(c.Request.Context(), sessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if !ownsPreview(state, id) {
		c.Error(apperror.NotFound("Preview not found"))
		return
	}

	data, contentType, err := h.previews.Open(id)
	if err != nil {
		if errors.Is(err, preview.ErrNotFound) {
			c.Error(apperror.NotFound("Preview not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// readUpload returns the uploaded file, or nil when the form carries none.
func (h *ProfileHandler) readUpload(c *gin.Context) (*domain.FileBlob, error) {
	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, apperror.TooLarge("Upload exceeds the request size limit")
		case errors.Is(err, http.ErrMissingFile):
			return nil, nil
		}
		return nil, apperror.BadRequest("Invalid multipart form")
	}

	src, err := header.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.FileBlob{
		Name: header.Filename,
		Type: security.DeclaredType(header.Header.Get("Content-Type"), data),
		Size: header.Size,
		Data: data,
	}, nil
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.KeySessionID)
}

func ownsPreview(state *domain.EditorState, id string) bool {
	if id == "" {
		return false
	}
	if state.Form != nil && state.Form.PicturePreview == id {
		return true
	}
	return state.View != nil && state.View.PicturePreview == id
}
