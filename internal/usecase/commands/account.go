package commands

import (
	"context"
	"log/slog"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/token"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/pkg/password"
	"content-dispatch/internal/usecase/dispatch"
	"content-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmailAlreadyVerified = errs.Mark(errs.New("email already verified"), errs.ErrValidation)

type AccountCommands interface {
	RequestEmailVerification(ctx context.Context, userID uuid.UUID, requestedIP *string) error
	VerifyEmail(ctx context.Context, rawToken string) error
	// RequestPasswordReset answers nil for unknown or inactive addresses.
	RequestPasswordReset(ctx context.Context, email string, requestedIP *string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
}

type accountCommandsImpl struct {
	uow        shared.UnitOfWork
	tokens     *TokenManager
	dispatcher dispatch.Dispatcher
	cfg        config.TokenConfig
}

func NewAccountCommands(uow shared.UnitOfWork, tokens *TokenManager, dispatcher dispatch.Dispatcher, cfg config.Config) AccountCommands {
	return &accountCommandsImpl{
		uow:        uow,
		tokens:     tokens,
		dispatcher: dispatcher,
		cfg:        cfg.Token,
	}
}

func (a *accountCommandsImpl) RequestEmailVerification(ctx context.Context, userID uuid.UUID, requestedIP *string) error {
	var rec *job.Record
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if !u.IsActive() {
			return ErrUserInactive
		}
		if u.IsEmailVerified() {
			return ErrEmailAlreadyVerified
		}

		issued, err := a.tokens.Issue(ctx, tx, userID, token.TypeEmailVerification, a.cfg.VerificationTTL, requestedIP)
		if err != nil {
			return err
		}

		link := actionURL(a.cfg.AppBaseURL, "/verify-email", issued.RawToken)
		payload, err := verificationMail(u.Email().Value(), link, issued.ExpiresAt)
		if err != nil {
			return err
		}
		rec, err = a.createEmailJob(ctx, tx, job.EventAuthVerifyEmail, userID, payload)
		return err
	})
	if err != nil {
		return err
	}

	a.dispatcher.DispatchAll(ctx, rec)
	return nil
}

func (a *accountCommandsImpl) VerifyEmail(ctx context.Context, rawToken string) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, err := a.tokens.Consume(ctx, tx, rawToken, token.TypeEmailVerification)
		if err != nil {
			return err
		}
		return tx.Users().MarkEmailVerified(ctx, tx.DB(), userID)
	})
}

func (a *accountCommandsImpl) RequestPasswordReset(ctx context.Context, email string, requestedIP *string) error {
	address, err := user.NewEmail(email)
	if err != nil {
		return err
	}

	var rec *job.Record
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, tx.DB(), address)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if !u.IsActive() {
			return nil
		}

		issued, err := a.tokens.Issue(ctx, tx, u.ID(), token.TypePasswordReset, a.cfg.ResetTTL, requestedIP)
		if err != nil {
			return err
		}

		link := actionURL(a.cfg.AppBaseURL, "/reset-password", issued.RawToken)
		payload, err := passwordResetMail(address.Value(), link, issued.ExpiresAt)
		if err != nil {
			return err
		}
		rec, err = a.createEmailJob(ctx, tx, job.EventAuthPasswordReset, u.ID(), payload)
		return err
	})
	if err != nil {
		return err
	}

	if rec == nil {
		slog.DebugContext(ctx, "password reset requested for unknown or inactive address")
		return nil
	}
	a.dispatcher.DispatchAll(ctx, rec)
	return nil
}

func (a *accountCommandsImpl) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	pw, err := user.NewPassword(newPassword)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, err := a.tokens.Consume(ctx, tx, rawToken, token.TypePasswordReset)
		if err != nil {
			return err
		}
		return tx.Users().UpdatePassword(ctx, tx.DB(), userID, hash)
	})
}

func (a *accountCommandsImpl) createEmailJob(ctx context.Context, tx shared.Tx, event job.EventType, subjectID uuid.UUID, payload job.EmailPayload) (*job.Record, error) {
	draft, err := job.NewEmailDraft(event, &subjectID, payload)
	if err != nil {
		return nil, err
	}
	return tx.Jobs().Create(ctx, tx.DB(), draft)
}
