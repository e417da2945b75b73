package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"session-service/domain"
	httpUsecase "session-service/internal/api/http/usecase"
)

type JoinRoomRequest struct {
	RoomID           int64                 `json:"room_id" validate:"required,min=1"`
	SelectDifficulty domain.LiveDifficulty `json:"select_difficulty" validate:"required,oneof=1 2"`
}

type JoinRoomResponse struct {
	JoinRoomResult domain.JoinRoomResult `json:"join_room_result"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{usecase: usecase}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	result, status, err := h.usecase.Execute(ctx, req.RoomID, req.SelectDifficulty, bearerToken(fbrCtx))
	if err != nil {
		return nil, status, err
	}
	return &JoinRoomResponse{JoinRoomResult: result}, status, nil
}
