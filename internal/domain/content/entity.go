package content

import (
	"time"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidVisibility  = errs.Mark(errs.New("invalid visibility"), errs.ErrValidation)
	ErrEmptyTitle         = errs.Mark(errs.New("title is required"), errs.ErrValidation)
	ErrTitleTooLong       = errs.Mark(errs.New("title is too long"), errs.ErrValidation)
	ErrBodyTooLong        = errs.Mark(errs.New("body is too long"), errs.ErrValidation)
	ErrNoVisibilityChange = errs.Mark(errs.New("content already has the requested visibility"), errs.ErrValidation)
	ErrNotAllowed         = errs.Mark(errs.New("actor may not change this content"), errs.ErrForbidden)
	ErrContentNotFound    = errs.Mark(errs.New("content not found"), errs.ErrNotFound)
)

type Item struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	title      Title
	slug       string
	body       Body
	visibility Visibility
	liveAt     *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewItem(ownerID uuid.UUID, titleText, bodyText string, now time.Time) (*Item, error) {
	title, err := NewTitle(titleText)
	if err != nil {
		return nil, err
	}
	body, err := NewBody(bodyText)
	if err != nil {
		return nil, err
	}

	return &Item{
		id:         uuid.New(),
		ownerID:    ownerID,
		title:      title,
		slug:       title.Slug(),
		body:       body,
		visibility: VisibilityDraft,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructItem(id, ownerID uuid.UUID, title Title, slug string, body Body, visibility Visibility, liveAt *time.Time, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:         id,
		ownerID:    ownerID,
		title:      title,
		slug:       slug,
		body:       body,
		visibility: visibility,
		liveAt:     liveAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) OwnerID() uuid.UUID     { return i.ownerID }
func (i *Item) Title() Title           { return i.title }
func (i *Item) Slug() string           { return i.slug }
func (i *Item) Body() Body             { return i.body }
func (i *Item) Visibility() Visibility { return i.visibility }
func (i *Item) LiveAt() *time.Time     { return i.liveAt }
func (i *Item) CreatedAt() time.Time   { return i.createdAt }
func (i *Item) UpdatedAt() time.Time   { return i.updatedAt }

// Authorize allows the owner or an elevated role to change visibility.
func (i *Item) Authorize(actorID uuid.UUID, actorRole user.Role) error {
	if i.ownerID == actorID || actorRole.IsElevated() {
		return nil
	}
	return ErrNotAllowed
}

// Transition moves the item to target and returns the event every
// visibility change must emit.
func (i *Item) Transition(target Visibility, now time.Time) (job.EventType, error) {
	if !target.IsValid() {
		return "", ErrInvalidVisibility
	}
	if i.visibility == target {
		return "", ErrNoVisibilityChange
	}

	i.visibility = target
	i.updatedAt = now

	if target == VisibilityPublished {
		return job.EventContentPublished, nil
	}
	return job.EventContentUnpublished, nil
}

// Opposite returns the visibility a transition to v starts from.
func Opposite(v Visibility) Visibility {
	if v == VisibilityPublished {
		return VisibilityDraft
	}
	return VisibilityPublished
}
