package bootstrap

import (
	httpHandler "session-service/internal/api/http/handler"
	httpUsecase "session-service/internal/api/http/usecase"
)

func SetupHTTPHandlers(store Store, sessionManager SessionManager, events EventPublisher) map[string]interface{} {
	createUserUseCase := httpUsecase.NewCreateUserUseCase(store)
	createUserHandler := httpHandler.NewCreateUserHandler(createUserUseCase)

	getMeUseCase := httpUsecase.NewGetMeUseCase(store, sessionManager)
	getMeHandler := httpHandler.NewGetMeHandler(getMeUseCase)

	updateUserUseCase := httpUsecase.NewUpdateUserUseCase(store, sessionManager)
	updateUserHandler := httpHandler.NewUpdateUserHandler(updateUserUseCase)

	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(store, store, sessionManager, events)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	listRoomsUseCase := httpUsecase.NewListRoomsUseCase(store)
	listRoomsHandler := httpHandler.NewListRoomsHandler(listRoomsUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(store, store, sessionManager, events)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	waitRoomUseCase := httpUsecase.NewWaitRoomUseCase(store, store, sessionManager)
	waitRoomHandler := httpHandler.NewWaitRoomHandler(waitRoomUseCase)

	startRoomUseCase := httpUsecase.NewStartRoomUseCase(store, events)
	startRoomHandler := httpHandler.NewStartRoomHandler(startRoomUseCase)

	endRoomUseCase := httpUsecase.NewEndRoomUseCase(store, store, sessionManager, events)
	endRoomHandler := httpHandler.NewEndRoomHandler(endRoomUseCase)

	roomResultUseCase := httpUsecase.NewRoomResultUseCase(store)
	roomResultHandler := httpHandler.NewRoomResultHandler(roomResultUseCase)

	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(store, events)
	leaveRoomHandler := httpHandler.NewLeaveRoomHandler(leaveRoomUseCase)

	return map[string]interface{}{
		"create-user": createUserHandler,
		"get-me":      getMeHandler,
		"update-user": updateUserHandler,
		"create-room": createRoomHandler,
		"list-rooms":  listRoomsHandler,
		"join-room":   joinRoomHandler,
		"wait-room":   waitRoomHandler,
		"start-room":  startRoomHandler,
		"end-room":    endRoomHandler,
		"room-result": roomResultHandler,
		"leave-room":  leaveRoomHandler,
	}
}
