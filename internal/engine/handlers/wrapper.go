package handlers

import (
	"fmt"

	"github.com/Peritract/meld/internal/domain"
)

// TypedHandlerFunc - это "чистый" хендлер, который работает с конкретным действием T
type TypedHandlerFunc[T domain.Action] func(ctx Context, action T) error

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные действия (WAIT)
type EmptyHandlerFunc func(ctx Context) error

// Typed берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Несовпадение типа - ошибка разводки, а не игрока.
func Typed[T domain.Action](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, action domain.Action) error {
		typed, ok := action.(T)
		if !ok {
			return fmt.Errorf("handler for %T got %T", *new(T), action)
		}
		return handler(ctx, typed)
	}
}

// Empty - обертка для действий без данных
func Empty(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ domain.Action) error {
		return handler(ctx)
	}
}
