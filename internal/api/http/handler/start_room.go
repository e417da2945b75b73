package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	httpUsecase "session-service/internal/api/http/usecase"
)

type StartRoomRequest struct {
	RoomID int64 `json:"room_id" validate:"required,min=1"`
}

type StartRoomResponse struct {
}

type StartRoomHandler struct {
	usecase httpUsecase.StartRoomUseCase
}

func NewStartRoomHandler(usecase httpUsecase.StartRoomUseCase) *StartRoomHandler {
	return &StartRoomHandler{usecase: usecase}
}

func (h *StartRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *StartRoomRequest) (*StartRoomResponse, int, error) {
	status, err := h.usecase.Execute(ctx, req.RoomID, bearerToken(fbrCtx))
	if err != nil {
		return nil, status, err
	}
	return &StartRoomResponse{}, status, nil
}
