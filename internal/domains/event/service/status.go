package service

import (
	"context"
	"fmt"

	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	notifModel "venue/internal/domains/notification/model"
	"venue/shared"
	"venue/shared/constant"
	"venue/shared/failure"
	"venue/shared/timezone"

	"github.com/rs/zerolog/log"
)

// ToggleConfirmation flips the event between PENDING and CONFIRMED. Events in
// any other status are already past the confirmation stage and are refused.
func (s *serviceImpl) ToggleConfirmation(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleEventConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.getExisting(ctx, id)
	if err != nil {
		return res, err
	}

	var next string

	switch current.Status {
	case model.StatusPending:
		next = model.StatusConfirmed
	case model.StatusConfirmed:
		next = model.StatusPending
	default:
		return res, failure.UnprocessableEntity(fmt.Sprintf("cannot toggle confirmation of a %s event", current.Status)) // nolint:wrapcheck
	}

	return s.transition(ctx, current, next)
}

// SetStatus moves the event from the confirmation stage into its lifecycle:
// only PENDING and CONFIRMED events may be moved, and only to one of the
// closed set of target statuses.
func (s *serviceImpl) SetStatus(ctx context.Context, id string, req dto.SetStatusRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetEventStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.getExisting(ctx, id)
	if err != nil {
		return res, err
	}

	if current.Status != model.StatusPending && current.Status != model.StatusConfirmed {
		return res, failure.UnprocessableEntity(fmt.Sprintf("cannot change status of a %s event", current.Status)) // nolint:wrapcheck
	}

	return s.transition(ctx, current, req.Status)
}

// Delete removes the event. Events with dependent rows are refused unless
// force is set, in which case everything hanging off the event goes with it.
func (s *serviceImpl) Delete(ctx context.Context, id string, force bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}

	deps, err := s.repo.DependentCounts(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to count event dependents")

		return fmt.Errorf("failed to count event dependents: %w", err)
	}

	if deps.Any() && !force {
		return failure.Conflict(fmt.Sprintf( // nolint:wrapcheck
			"event has %s attached; repeat with force=true to delete everything",
			deps.Describe(),
		))
	}

	if err = s.repo.DeleteCascade(ctx, id); err != nil {
		log.Error().Err(err).Str("eventID", id).Msg("failed to delete event")

		return err //nolint:wrapcheck
	}

	s.notify(ctx, current.AccountID, notifModel.TypeBookingCancelled, "Booking deleted",
		fmt.Sprintf("Your event %q has been deleted", current.Name))
	s.invalidateEventCaches(ctx, id)

	return nil
}

func (s *serviceImpl) getExisting(ctx context.Context, id string) (model.Event, error) {
	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return event, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return event, failure.NotFound("event not found") // nolint:wrapcheck
	}

	return event, nil
}

func (s *serviceImpl) transition(ctx context.Context, current model.Event, next string) (res dto.EventResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedBy: user,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("eventID", current.ID).Msg("failed to update event status")

		return res, fmt.Errorf("failed to update event status: %w", err)
	}

	s.notify(ctx, current.AccountID, notifModel.TypeStatusChanged, "Booking status changed",
		fmt.Sprintf("Your event %q is now %s", current.Name, next))
	s.invalidateEventCaches(ctx, current.ID)

	current.Status = next
	res.FromModel(current)

	services, err := s.getEventServices(ctx, current.ID)
	if err != nil {
		return res, err
	}

	res.WithServices(services)

	return res, nil
}
