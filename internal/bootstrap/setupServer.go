package bootstrap

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"session-service/config"
	httpHandler "session-service/internal/api/http/handler"
	"session-service/internal/handler"
	"session-service/internal/server"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}) *fiber.App {

	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	createUserHandler := httpHandlers["create-user"].(*httpHandler.CreateUserHandler)
	getMeHandler := httpHandlers["get-me"].(*httpHandler.GetMeHandler)
	updateUserHandler := httpHandlers["update-user"].(*httpHandler.UpdateUserHandler)
	createRoomHandler := httpHandlers["create-room"].(*httpHandler.CreateRoomHandler)
	listRoomsHandler := httpHandlers["list-rooms"].(*httpHandler.ListRoomsHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpHandler.JoinRoomHandler)
	waitRoomHandler := httpHandlers["wait-room"].(*httpHandler.WaitRoomHandler)
	startRoomHandler := httpHandlers["start-room"].(*httpHandler.StartRoomHandler)
	endRoomHandler := httpHandlers["end-room"].(*httpHandler.EndRoomHandler)
	roomResultHandler := httpHandlers["room-result"].(*httpHandler.RoomResultHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpHandler.LeaveRoomHandler)

	app.Post("/user/create", handler.HandleWithFiber[httpHandler.CreateUserRequest, httpHandler.CreateUserResponse](createUserHandler))
	app.Get("/user/me", handler.HandleWithFiber[httpHandler.GetMeRequest, httpHandler.GetMeResponse](getMeHandler))
	app.Post("/user/update", handler.HandleWithFiber[httpHandler.UpdateUserRequest, httpHandler.UpdateUserResponse](updateUserHandler))

	app.Post("/room/create", handler.HandleWithFiber[httpHandler.CreateRoomRequest, httpHandler.CreateRoomResponse](createRoomHandler))
	app.Post("/room/list", handler.HandleWithFiber[httpHandler.ListRoomsRequest, httpHandler.ListRoomsResponse](listRoomsHandler))
	app.Post("/room/join", handler.HandleWithFiber[httpHandler.JoinRoomRequest, httpHandler.JoinRoomResponse](joinRoomHandler))
	app.Post("/room/wait", handler.HandleWithFiber[httpHandler.WaitRoomRequest, httpHandler.WaitRoomResponse](waitRoomHandler))
	app.Post("/room/start", handler.HandleWithFiber[httpHandler.StartRoomRequest, httpHandler.StartRoomResponse](startRoomHandler))
	app.Post("/room/end", handler.HandleWithFiber[httpHandler.EndRoomRequest, httpHandler.EndRoomResponse](endRoomHandler))
	app.Post("/room/result", handler.HandleWithFiber[httpHandler.RoomResultRequest, httpHandler.RoomResultResponse](roomResultHandler))
	app.Post("/room/leave", handler.HandleWithFiber[httpHandler.LeaveRoomRequest, httpHandler.LeaveRoomResponse](leaveRoomHandler))

	return app
}
