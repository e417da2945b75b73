package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	httpUsecase "session-service/internal/api/http/usecase"
)

type LeaveRoomRequest struct {
	RoomID int64 `json:"room_id" validate:"required,min=1"`
}

type LeaveRoomResponse struct {
}

type LeaveRoomHandler struct {
	usecase httpUsecase.LeaveRoomUseCase
}

func NewLeaveRoomHandler(usecase httpUsecase.LeaveRoomUseCase) *LeaveRoomHandler {
	return &LeaveRoomHandler{usecase: usecase}
}

func (h *LeaveRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *LeaveRoomRequest) (*LeaveRoomResponse, int, error) {
	status, err := h.usecase.Execute(ctx, req.RoomID, bearerToken(fbrCtx))
	if err != nil {
		return nil, status, err
	}
	return &LeaveRoomResponse{}, status, nil
}
