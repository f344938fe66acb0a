// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"voicenotes/internal/adapters/http/messaging"
	"voicenotes/internal/adapters/http/middleware"
	"voicenotes/internal/adapters/http/notes"
	"voicenotes/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, notesService services.NotesService, messagingService services.MessagingService) {
	notesHandler := notes.NewHandler(notesService)
	messagingHandler := messaging.NewHandler(messagingService)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Маршруты заметок.
	notesRoutes := app.Group("/notes")
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/:id", notesHandler.GetNote)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Patch("/:id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:id", notesHandler.DeleteNote)

	// Имитация отправки заметки сообщением.
	app.Post("/send-message", messagingHandler.SendMessage)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
