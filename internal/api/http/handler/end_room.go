package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"session-service/domain"
	httpUsecase "session-service/internal/api/http/usecase"
)

type EndRoomRequest struct {
	RoomID int64 `json:"room_id" validate:"required,min=1"`
	// Short lists are zero-padded to the five judge categories; longer
	// lists and negative tallies are rejected here.
	JudgeCountList []int `json:"judge_count_list" validate:"max=5,dive,min=0"`
	Score          int64 `json:"score" validate:"min=0"`
}

type EndRoomResponse struct {
}

type EndRoomHandler struct {
	usecase httpUsecase.EndRoomUseCase
}

func NewEndRoomHandler(usecase httpUsecase.EndRoomUseCase) *EndRoomHandler {
	return &EndRoomHandler{usecase: usecase}
}

func (h *EndRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *EndRoomRequest) (*EndRoomResponse, int, error) {
	result := domain.PlayResult{JudgeCountList: req.JudgeCountList, Score: req.Score}
	status, err := h.usecase.Execute(ctx, req.RoomID, result, bearerToken(fbrCtx))
	if err != nil {
		return nil, status, err
	}
	return &EndRoomResponse{}, status, nil
}
