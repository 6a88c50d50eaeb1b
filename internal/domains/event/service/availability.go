package service

import (
	"context"
	"fmt"

	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	roomModel "venue/internal/domains/room/model"
	servicesModel "venue/internal/domains/services/model"
	"venue/shared"
	"venue/shared/constant"
	"venue/shared/failure"

	"github.com/rs/zerolog/log"
)

// CheckRoomAvailability reports whether the room is free over the window.
// The answer is advisory: the booking transaction re-checks under lock.
func (s *serviceImpl) CheckRoomAvailability(ctx context.Context, roomID string, window model.Window) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckRoomAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for availability check")

		return res, fmt.Errorf("failed to get room for availability check: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	conflicts, err := s.repo.RoomConflicts(ctx, roomID, window, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to find room conflicts")

		return res, fmt.Errorf("failed to find room conflicts: %w", err)
	}

	res.Conflicts = conflicts

	switch {
	case !room.Bookable():
		res.Reason = "room is not open for booking"
	case len(conflicts) > 0:
		res.Reason = "room is already booked in the requested window"
	default:
		res.Available = true
	}

	return res, nil
}

// CheckVariationAvailability reports whether the variation is free over the
// window.
func (s *serviceImpl) CheckVariationAvailability(ctx context.Context, variationID string, window model.Window) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckVariationAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	variation, err := s.variationRepo.Get(ctx, shared.FilterByID(variationID, servicesModel.VariationFieldID, servicesModel.VariationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get variation for availability check")

		return res, fmt.Errorf("failed to get variation for availability check: %w", err)
	}

	if variation.ID == constant.Empty {
		return res, failure.NotFound("variation not found") // nolint:wrapcheck
	}

	conflicts, err := s.repo.VariationConflicts(ctx, variationID, window, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to find variation conflicts")

		return res, fmt.Errorf("failed to find variation conflicts: %w", err)
	}

	res.Conflicts = conflicts

	switch {
	case !variation.Active:
		res.Reason = "variation is not open for booking"
	case len(conflicts) > 0:
		res.Reason = "variation is already booked in the requested window"
	default:
		res.Available = true
	}

	return res, nil
}
