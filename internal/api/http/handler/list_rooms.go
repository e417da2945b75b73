package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"session-service/domain"
	httpUsecase "session-service/internal/api/http/usecase"
)

type ListRoomsRequest struct {
	LiveID int64 `json:"live_id" validate:"min=0"` // 0 lists every room
}

type ListRoomsResponse struct {
	RoomList []domain.RoomInfo `json:"room_list"`
}

type ListRoomsHandler struct {
	usecase httpUsecase.ListRoomsUseCase
}

func NewListRoomsHandler(usecase httpUsecase.ListRoomsUseCase) *ListRoomsHandler {
	return &ListRoomsHandler{usecase: usecase}
}

func (h *ListRoomsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ListRoomsRequest) (*ListRoomsResponse, int, error) {
	rooms, status, err := h.usecase.Execute(ctx, req.LiveID)
	if err != nil {
		return nil, status, err
	}
	return &ListRoomsResponse{RoomList: rooms}, status, nil
}
