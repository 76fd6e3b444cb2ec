package commands

import (
	"context"
	"strings"

	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra/repository"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/usecase/dispatch"
	"content-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCreateForbidden    = errs.Mark(errs.New("role may not create content"), errs.ErrForbidden)
	ErrTransitionConflict = errs.Mark(errs.New("content visibility changed concurrently"), errs.ErrValidation)
)

type PublishResult struct {
	ContentID    uuid.UUID
	Visibility   content.Visibility
	ContentJobID int64
	// AlertJobID is nil unless an operator alert was queued.
	AlertJobID *int64
}

type PublishingCommands interface {
	CreateContent(ctx context.Context, ownerID uuid.UUID, ownerRole user.Role, title, body string) (*content.Item, error)
	Publish(ctx context.Context, contentID, actorID uuid.UUID, actorRole user.Role) (*PublishResult, error)
	Unpublish(ctx context.Context, contentID, actorID uuid.UUID, actorRole user.Role) (*PublishResult, error)
}

type publishingCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher dispatch.Dispatcher
	clock      clock.Clock
	operators  []string
}

func NewPublishingCommands(uow shared.UnitOfWork, dispatcher dispatch.Dispatcher, clk clock.Clock, cfg config.Config) PublishingCommands {
	operators := make([]string, 0, len(cfg.Alert.OperatorEmails))
	for _, addr := range cfg.Alert.OperatorEmails {
		if addr = strings.TrimSpace(addr); addr != "" {
			operators = append(operators, addr)
		}
	}
	return &publishingCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
		operators:  operators,
	}
}

func (p *publishingCommandsImpl) CreateContent(ctx context.Context, ownerID uuid.UUID, ownerRole user.Role, title, body string) (*content.Item, error) {
	if !ownerRole.IsElevated() {
		return nil, ErrCreateForbidden
	}

	now := p.clock.Now()
	item, err := content.NewItem(ownerID, title, body, now)
	if err != nil {
		return nil, err
	}

	var rec *job.Record
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Contents().Create(ctx, tx.DB(), item); err != nil {
			return err
		}
		rec, err = p.createContentJob(ctx, tx, job.EventContentChanged, item, item.Visibility(), ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.dispatcher.DispatchAll(ctx, rec)
	return item, nil
}

func (p *publishingCommandsImpl) Publish(ctx context.Context, contentID, actorID uuid.UUID, actorRole user.Role) (*PublishResult, error) {
	return p.transition(ctx, contentID, actorID, actorRole, content.VisibilityPublished)
}

func (p *publishingCommandsImpl) Unpublish(ctx context.Context, contentID, actorID uuid.UUID, actorRole user.Role) (*PublishResult, error) {
	return p.transition(ctx, contentID, actorID, actorRole, content.VisibilityDraft)
}

// transition changes visibility and records its jobs in one transaction.
// Authorization is checked before the first write so a rejected request
// leaves no rows behind.
func (p *publishingCommandsImpl) transition(ctx context.Context, contentID, actorID uuid.UUID, actorRole user.Role, target content.Visibility) (*PublishResult, error) {
	var (
		result *PublishResult
		recs   []*job.Record
	)
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		recs = recs[:0]

		item, err := tx.Contents().FindByID(ctx, tx.DB(), contentID)
		if err != nil {
			return err
		}
		if err := item.Authorize(actorID, actorRole); err != nil {
			return err
		}

		from := item.Visibility()
		event, err := item.Transition(target, p.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Contents().UpdateVisibility(ctx, tx.DB(), contentID, from, target); err != nil {
			if errs.Is(err, repository.ErrVisibilityConflict) {
				return errs.Mark(err, ErrTransitionConflict)
			}
			return err
		}

		contentJob, err := p.createContentJob(ctx, tx, event, item, from, actorID)
		if err != nil {
			return err
		}
		recs = append(recs, contentJob)
		result = &PublishResult{
			ContentID:    contentID,
			Visibility:   target,
			ContentJobID: contentJob.ID,
		}

		if target != content.VisibilityPublished || len(p.operators) == 0 {
			return nil
		}

		alertJob, err := p.createAlertJob(ctx, tx, item, actorID)
		if err != nil {
			return err
		}
		recs = append(recs, alertJob)
		result.AlertJobID = &alertJob.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.dispatcher.DispatchAll(ctx, recs...)
	return result, nil
}

func (p *publishingCommandsImpl) contentPayload(item *content.Item, from content.Visibility, actorID uuid.UUID) job.ContentPayload {
	return job.ContentPayload{
		ContentID:          item.ID(),
		Title:              item.Title().String(),
		Slug:               item.Slug(),
		Visibility:         item.Visibility().String(),
		PreviousVisibility: from.String(),
		ActorID:            actorID,
		OccurredAt:         item.UpdatedAt(),
	}
}

func (p *publishingCommandsImpl) createContentJob(ctx context.Context, tx shared.Tx, event job.EventType, item *content.Item, from content.Visibility, actorID uuid.UUID) (*job.Record, error) {
	draft, err := job.NewContentDraft(event, p.contentPayload(item, from, actorID))
	if err != nil {
		return nil, err
	}
	return tx.Jobs().Create(ctx, tx.DB(), draft)
}

func (p *publishingCommandsImpl) createAlertJob(ctx context.Context, tx shared.Tx, item *content.Item, actorID uuid.UUID) (*job.Record, error) {
	payload, err := publishedAlertMail(p.operators, p.contentPayload(item, content.VisibilityDraft, actorID))
	if err != nil {
		return nil, err
	}
	subjectID := item.ID()
	draft, err := job.NewEmailDraft(job.EventContentPublishedAlert, &subjectID, payload)
	if err != nil {
		return nil, err
	}
	return tx.Jobs().Create(ctx, tx.DB(), draft)
}
