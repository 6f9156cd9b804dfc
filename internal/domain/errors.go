package domain

import "errors"

// ErrorKind - вид восстановимой ошибки действия
type ErrorKind uint8

const (
	ErrKindImpossible ErrorKind = iota
	ErrKindInventoryFull
)

// ActionError - ошибка интерпретации действия.
// Не тратит ход: игрок выбирает снова, AI теряет попытку.
type ActionError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ActionError) Error() string {
	return e.Msg
}

// Impossible - действие нельзя выполнить в текущей ситуации
func Impossible(msg string) error {
	return &ActionError{Kind: ErrKindImpossible, Msg: msg}
}

// InventoryFull - частный случай Impossible для переполненного инвентаря
func InventoryFull(msg string) error {
	return &ActionError{Kind: ErrKindInventoryFull, Msg: msg}
}

// AsActionError достает ActionError из цепочки ошибок
func AsActionError(err error) (*ActionError, bool) {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsInventoryFull проверяет, что ошибка вызвана переполнением
func IsInventoryFull(err error) bool {
	ae, ok := AsActionError(err)
	return ok && ae.Kind == ErrKindInventoryFull
}
