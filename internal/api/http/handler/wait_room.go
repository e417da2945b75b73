package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"session-service/domain"
	httpUsecase "session-service/internal/api/http/usecase"
)

type WaitRoomRequest struct {
	RoomID int64 `json:"room_id" validate:"required,min=1"`
}

type WaitRoomResponse struct {
	Status       domain.WaitRoomStatus `json:"status"`
	RoomUserList []domain.RoomUser     `json:"room_user_list"`
}

type WaitRoomHandler struct {
	usecase httpUsecase.WaitRoomUseCase
}

func NewWaitRoomHandler(usecase httpUsecase.WaitRoomUseCase) *WaitRoomHandler {
	return &WaitRoomHandler{usecase: usecase}
}

func (h *WaitRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *WaitRoomRequest) (*WaitRoomResponse, int, error) {
	status, roster, httpStatus, err := h.usecase.Execute(ctx, req.RoomID, bearerToken(fbrCtx))
	if err != nil {
		return nil, httpStatus, err
	}
	return &WaitRoomResponse{Status: status, RoomUserList: roster}, httpStatus, nil
}
