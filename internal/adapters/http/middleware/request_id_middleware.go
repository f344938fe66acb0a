// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"voicenotes/pkg/logger"
)

// Имена заголовка и locals-ключа запроса.
const (
	HeaderRequestID     = "X-Request-ID"
	LocalRequestContext = "requestContext"
)

// NewRequestIDMiddleware привязывает к запросу идентификатор: берет его из
// заголовка X-Request-ID или генерирует новый, кладет контекст с ним в
// Locals и возвращает идентификатор клиенту в ответе.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		ctx.Locals(LocalRequestContext, requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		return ctx.Next()
	}
}

// RequestContext извлекает контекст запроса из Locals; если middleware не
// отработал, возвращает базовый контекст fiber.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(LocalRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
