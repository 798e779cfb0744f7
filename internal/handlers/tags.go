package handlers

//go:generate mockgen -source=tags.go -destination=mock_tags_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-notes/internal/models"
)

// TagLister lists the tag catalog.
type TagLister interface {
	List(ctx context.Context) ([]models.Tag, error)
}

// TagCreator adds a tag to the catalog.
type TagCreator interface {
	Create(ctx context.Context, callerID int64, name string, color *string) (*models.Tag, error)
}

// TagGetter reads a tag.
type TagGetter interface {
	Get(ctx context.Context, tagID int64) (*models.Tag, error)
}

// TagUpdater renames or recolors a tag.
type TagUpdater interface {
	Update(ctx context.Context, callerID, tagID int64, upd models.TagUpdate) (*models.Tag, error)
}

// TagDeleter removes a tag from the catalog.
type TagDeleter interface {
	Delete(ctx context.Context, callerID, tagID int64) error
}

// CreateTagRequest represents the JSON body for tag creation
// swagger:model CreateTagRequest
type CreateTagRequest struct {
	// Unique tag name
	// required: true
	// default: work
	Name string `json:"tag_name"`

	// Hex color, #808080 when omitted
	// default: #FF5733
	Color *string `json:"color"`
}

// UpdateTagRequest represents the JSON body for a tag update
// swagger:model UpdateTagRequest
type UpdateTagRequest struct {
	Name  *string `json:"tag_name"`
	Color *string `json:"color"`
}

// TagResponse wraps a single tag
// swagger:model TagResponse
type TagResponse struct {
	Message string      `json:"message,omitempty"`
	Tag     *models.Tag `json:"tag"`
}

// TagsResponse wraps the catalog
// swagger:model TagsResponse
type TagsResponse struct {
	Tags []models.Tag `json:"tags"`
}

// NewListTagsHandler returns an HTTP handler listing every tag.
// @Summary List tags
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.TagsResponse
// @Router /tags [get]
func NewListTagsHandler(svc TagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TagsResponse{Tags: tags})
	}
}

// NewCreateTagHandler returns an HTTP handler that creates a tag.
// @Summary Create tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createTagRequest body handlers.CreateTagRequest true "Tag"
// @Success 201 {object} handlers.TagResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad name or color"
// @Failure 409 {object} handlers.ErrorResponse "Tag name already exists"
// @Router /tags [post]
func NewCreateTagHandler(svc TagCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		var req CreateTagRequest
		if err := decodeJSON(r, &req, nil); err != nil {
			writeError(w, err)
			return
		}

		tag, err := svc.Create(r.Context(), caller, req.Name, req.Color)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, TagResponse{Message: "Tag created successfully", Tag: tag})
	}
}

// NewGetTagHandler returns an HTTP handler that reads a tag.
// @Summary Get tag
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param tag_id path int true "Tag ID"
// @Success 200 {object} handlers.TagResponse
// @Failure 404 {object} handlers.ErrorResponse "Tag not found"
// @Router /tags/{tag_id} [get]
func NewGetTagHandler(svc TagGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := pathID(r, "tag_id")
		if err != nil {
			writeError(w, err)
			return
		}

		tag, err := svc.Get(r.Context(), tagID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TagResponse{Tag: tag})
	}
}

// NewUpdateTagHandler returns an HTTP handler that updates a tag.
// @Summary Update tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tag_id path int true "Tag ID"
// @Param updateTagRequest body handlers.UpdateTagRequest true "Fields to change"
// @Success 200 {object} handlers.TagResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad name or color"
// @Failure 404 {object} handlers.ErrorResponse "Tag not found"
// @Failure 409 {object} handlers.ErrorResponse "Tag name already exists"
// @Router /tags/{tag_id} [put]
func NewUpdateTagHandler(svc TagUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		tagID, err := pathID(r, "tag_id")
		if err != nil {
			writeError(w, err)
			return
		}
		var req UpdateTagRequest
		if err := decodeJSON(r, &req, nil); err != nil {
			writeError(w, err)
			return
		}

		tag, err := svc.Update(r.Context(), caller, tagID, models.TagUpdate{Name: req.Name, Color: req.Color})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TagResponse{Message: "Tag updated successfully", Tag: tag})
	}
}

// NewDeleteTagHandler returns an HTTP handler that deletes a tag.
// @Summary Delete tag
// @Description Deletes the tag, detaches it from every note and refreshes the statistics of affected users.
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param tag_id path int true "Tag ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Tag not found"
// @Router /tags/{tag_id} [delete]
func NewDeleteTagHandler(svc TagDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		tagID, err := pathID(r, "tag_id")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), caller, tagID); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Tag deleted successfully"})
	}
}
