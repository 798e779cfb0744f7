package services

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-notes/internal/apperrors"
	"github.com/sbilibin2017/gw-notes/internal/events"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

const minTagNameLen = 2

var tagColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TagService manages the global tag catalog.
type TagService struct {
	tx     Transactor
	tags   TagStore
	recalc *StatsRecalculator
	events EventPublisher
}

// NewTagService creates a new TagService instance.
func NewTagService(tx Transactor, tags TagStore, stats StatsStore, events EventPublisher) *TagService {
	return &TagService{
		tx:     tx,
		tags:   tags,
		recalc: NewStatsRecalculator(stats),
		events: events,
	}
}

func validateTagName(name string) error {
	if utf8.RuneCountInString(name) < minTagNameLen {
		return apperrors.Invalid("Tag name must be at least %d characters long", minTagNameLen)
	}
	return nil
}

func validateTagColor(color string) error {
	if !tagColorPattern.MatchString(color) {
		return apperrors.Invalid("Color must be in hex format (e.g., #FF5733)")
	}
	return nil
}

// Create adds a tag. A nil or empty color gets models.DefaultTagColor.
func (svc *TagService) Create(ctx context.Context, callerID int64, name string, color *string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Invalid("Tag name is required")
	}
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	c := models.DefaultTagColor
	if color != nil && *color != "" {
		c = *color
	}
	if err := validateTagColor(c); err != nil {
		return nil, err
	}

	tag, err := svc.tags.Create(ctx, name, c)
	if err != nil {
		logger.Log.Errorw("failed to create tag", "name", name, "error", err)
		return nil, err
	}
	publish(ctx, svc.events, events.New(models.EventTagCreated, callerID, tag.TagID))
	return tag, nil
}

// Get returns the tag with tagID.
func (svc *TagService) Get(ctx context.Context, tagID int64) (*models.Tag, error) {
	return svc.tags.GetByID(ctx, tagID)
}

// List returns every tag ordered by name.
func (svc *TagService) List(ctx context.Context) ([]models.Tag, error) {
	tags, err := svc.tags.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "error", err)
		return nil, err
	}
	return tags, nil
}

// Update renames or recolors a tag.
func (svc *TagService) Update(ctx context.Context, callerID, tagID int64, upd models.TagUpdate) (*models.Tag, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if err := validateTagName(name); err != nil {
			return nil, err
		}
		upd.Name = &name
	}
	if upd.Color != nil {
		if err := validateTagColor(*upd.Color); err != nil {
			return nil, err
		}
	}
	if upd.IsEmpty() {
		return nil, apperrors.Invalid("No fields to update")
	}

	tag, err := svc.tags.Update(ctx, tagID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update tag", "tag_id", tagID, "error", err)
		return nil, err
	}
	publish(ctx, svc.events, events.New(models.EventTagUpdated, callerID, tag.TagID))
	return tag, nil
}

// Delete removes a tag from the catalog and from every note carrying it,
// then recomputes the stats of the owners of those notes.
func (svc *TagService) Delete(ctx context.Context, callerID, tagID int64) error {
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		// The row lock waits for in-flight attaches, so OwnersOf sees them.
		if err := svc.tags.Lock(ctx, tagID); err != nil {
			return err
		}
		owners, err := svc.tags.OwnersOf(ctx, tagID)
		if err != nil {
			return err
		}
		if err := svc.tags.Delete(ctx, tagID); err != nil {
			return err
		}
		for _, owner := range owners {
			if err := svc.recalc.Recalculate(ctx, owner); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to delete tag", "tag_id", tagID, "error", err)
		return err
	}
	publish(ctx, svc.events, events.New(models.EventTagDeleted, callerID, tagID))
	return nil
}
