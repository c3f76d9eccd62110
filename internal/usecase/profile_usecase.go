package usecase

import (
	"context"
	"errors"

	"profile-editor/internal/domain"
	"profile-editor/pkg/apperror"
	"profile-editor/pkg/logger"
)

type profileUsecase struct {
	sessions domain.SessionRepository
}

func NewProfileUsecase(sessions domain.SessionRepository) domain.ProfileUsecase {
	return &profileUsecase{sessions: sessions}
}

// EnsureSession returns id when it names a live session, otherwise a new one.
func (u *profileUsecase) EnsureSession(ctx context.Context, id string) (string, error) {
	if id != "" {
		err := u.sessions.WithSession(ctx, id, func(domain.ProfileEditor) error { return nil })
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return "", apperror.Internal(err)
		}
	}

	newID, err := u.sessions.Create(ctx)
	if err != nil {
		return "", apperror.Internal(err)
	}
	logger.Log.Debug("Session created", "session_id", newID)
	return newID, nil
}

func (u *profileUsecase) State(ctx context.Context, sessionID string) (*domain.EditorState, error) {
	return u.run(ctx, sessionID, func(domain.ProfileEditor) error { return nil })
}

func (u *profileUsecase) SetField(ctx context.Context, sessionID string, name string, value string) (*domain.EditorState, error) {
	field, err := domain.ParseFieldName(name)
	if err != nil {
		return nil, mapError(err)
	}
	return u.run(ctx, sessionID, func(e domain.ProfileEditor) error {
		return e.SetField(field, value)
	})
}

func (u *profileUsecase) SetFile(ctx context.Context, sessionID string, name string, file *domain.FileBlob) (*domain.EditorState, error) {
	field, err := domain.ParseFieldName(name)
	if err != nil {
		return nil, mapError(err)
	}
	return u.run(ctx, sessionID, func(e domain.ProfileEditor) error {
		return e.SetFileField(field, file)
	})
}

func (u *profileUsecase) Blur(ctx context.Context, sessionID string, name string) (*domain.EditorState, error) {
	field, err := domain.ParseFieldName(name)
	if err != nil {
		return nil, mapError(err)
	}
	return u.run(ctx, sessionID, func(e domain.ProfileEditor) error {
		return e.Blur(field)
	})
}

func (u *profileUsecase) ToggleResumeMode(ctx context.Context, sessionID string, mode string) (*domain.EditorState, error) {
	m, err := domain.ParseResumeMode(mode)
	if err != nil {
		return nil, mapError(err)
	}
	return u.run(ctx, sessionID, func(e domain.ProfileEditor) error {
		return e.ToggleResumeMode(m)
	})
}

func (u *profileUsecase) Submit(ctx context.Context, sessionID string) (*domain.EditorState, error) {
	return u.run(ctx, sessionID, func(e domain.ProfileEditor) error {
		_, err := e.Submit()
		return err
	})
}

func (u *profileUsecase) Cancel(ctx context.Context, sessionID string) (*domain.EditorState, error) {
	return u.run(ctx, sessionID, func(e domain.ProfileEditor) error {
		return e.Cancel()
	})
}

func (u *profileUsecase) Edit(ctx context.Context, sessionID string) (*domain.EditorState, error) {
	return u.run(ctx, sessionID, func(e domain.ProfileEditor) error {
		return e.Edit()
	})
}

// run applies op to the session's editor and snapshots the resulting state
// under the same lock.
func (u *profileUsecase) run(ctx context.Context, sessionID string, op func(domain.ProfileEditor) error) (*domain.EditorState, error) {
	var state domain.EditorState
	err := u.sessions.WithSession(ctx, sessionID, func(e domain.ProfileEditor) error {
		if err := op(e); err != nil {
			return err
		}
		state = e.State()
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &state, nil
}

// mapError turns domain errors into transport-aware AppErrors.
func mapError(err error) error {
	var failure *domain.ValidationFailure
	switch {
	case errors.As(err, &failure):
		return apperror.Unprocessable("Profile has invalid fields").WithDetails(failure.Errors)
	case errors.Is(err, domain.ErrSessionNotFound):
		return apperror.NotFound("Session not found")
	case errors.Is(err, domain.ErrUnknownField):
		return apperror.NotFound(err.Error())
	case errors.Is(err, domain.ErrNotFileField),
		errors.Is(err, domain.ErrNotTextField),
		errors.Is(err, domain.ErrInvalidResumeMode):
		return apperror.BadRequest(err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return apperror.Conflict(err.Error())
	}
	return apperror.Internal(err)
}
