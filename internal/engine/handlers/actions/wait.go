package actions

import (
	"github.com/Peritract/meld/internal/engine/handlers"
)

// HandleWait - пропуск хода. Ничего не меняет.
func HandleWait(ctx handlers.Context) error {
	return nil
}
