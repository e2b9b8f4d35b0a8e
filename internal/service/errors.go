package service

import (
	"context"
	"errors"

	"github.com/rosterhq/tournament-roster/internal/domain"
	"github.com/rosterhq/tournament-roster/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/rosterhq/tournament-roster/internal/service")

// storeError переводит ошибку репозитория в доменную.
// notFound возвращается, если искомая запись отсутствует.
func storeError(err error, notFound *domain.DomainError) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return asTransient(err)
}

// memberWriteError - ошибка вставки участника
func memberWriteError(err error) error {
	if errors.Is(err, repository.ErrConflict) {
		return domain.ErrAlreadyOnTeam
	}
	return storeError(err, domain.ErrInvalidTeam)
}

func asTransient(err error) error {
	if err == nil {
		return nil
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}

	if errors.Is(err, repository.ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return domain.NewTransientError(err)
	}

	return err
}

// finish завершает операцию: отказ по правилам пишется в debug,
// сбой хранилища - в warn или error, и отмечается в спане
func finish(log *zap.Logger, span trace.Span, op string, err error) error {
	err = asTransient(err)
	if err == nil {
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var domainErr *domain.DomainError
	switch {
	case errors.Is(err, domain.ErrTransient):
		log.Warn("operation failed transiently", zap.String("op", op), zap.Error(err))
	case errors.As(err, &domainErr):
		log.Debug("operation rejected", zap.String("op", op), zap.String("code", domainErr.Code))
	default:
		log.Error("operation failed", zap.String("op", op), zap.Error(err))
	}

	return err
}
