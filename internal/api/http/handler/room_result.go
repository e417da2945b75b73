package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"session-service/domain"
	httpUsecase "session-service/internal/api/http/usecase"
)

type RoomResultRequest struct {
	RoomID int64 `json:"room_id" validate:"required,min=1"`
}

// ResultUserList stays empty until every member has reported; clients poll.
type RoomResultResponse struct {
	ResultUserList []domain.ResultUser `json:"result_user_list"`
}

type RoomResultHandler struct {
	usecase httpUsecase.RoomResultUseCase
}

func NewRoomResultHandler(usecase httpUsecase.RoomResultUseCase) *RoomResultHandler {
	return &RoomResultHandler{usecase: usecase}
}

func (h *RoomResultHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *RoomResultRequest) (*RoomResultResponse, int, error) {
	results, status, err := h.usecase.Execute(ctx, req.RoomID)
	if err != nil {
		return nil, status, err
	}
	return &RoomResultResponse{ResultUserList: results}, status, nil
}
