package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/internal/storage"
	"github.com/Peritract/meld/internal/world"
	"github.com/Peritract/meld/pkg/logger"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Game  *engine.Game
	Saves storage.Repository
}

func NewDebugHandler(g *engine.Game, saves storage.Repository) *DebugHandler {
	return &DebugHandler{Game: g, Saves: saves}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/summary", h.handleSummary)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/snapshot", h.handleSnapshot)
	mux.HandleFunc("/debug/saves", h.handleSaves)
}

// /debug/summary - сводка партии
func (h *DebugHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Game.Summary())
}

// EntityDump - сущность со скрытыми деталями: стек разумов, состояния, тело
type EntityDump struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Faction    string          `json:"faction"`
	Pos        domain.Position `json:"pos"`
	Body       *domain.Body    `json:"body"`
	Minds      []string        `json:"minds"`
	Conditions []string        `json:"conditions,omitempty"`
	Abilities  []string        `json:"abilities,omitempty"`
	Items      []string        `json:"items,omitempty"`
}

// /debug/entities - дамп всех сущностей зоны (включая скрытые параметры AI)
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	var dump []EntityDump
	h.Game.Inspect(func(level *world.Level, round int) {
		for _, e := range level.Entities() {
			d := EntityDump{
				ID:      e.ID.Key(),
				Name:    e.Name,
				Faction: e.Faction,
				Pos:     e.Pos,
				Body:    e.Body,
			}
			for _, m := range e.Minds() {
				d.Minds = append(d.Minds, fmt.Sprintf("%T", m))
			}
			for _, c := range e.Conditions() {
				d.Conditions = append(d.Conditions, fmt.Sprintf("%s (%d)", c.Name(), c.Remaining()))
			}
			for _, a := range e.Abilities() {
				d.Abilities = append(d.Abilities, fmt.Sprintf("%s (%d)", a.Key, a.Delay))
			}
			for _, it := range e.Items() {
				d.Items = append(d.Items, it.Name)
			}
			dump = append(dump, d)
		}
	})
	writeJSON(w, dump)
}

// /debug/snapshot - полный снимок зоны в формате сохранения
func (h *DebugHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Game.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

// /debug/saves - GET список слотов, POST ?name=slot сохраняет партию
func (h *DebugHandler) handleSaves(w http.ResponseWriter, r *http.Request) {
	if h.Saves == nil {
		http.Error(w, "saves are disabled", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		recs, err := h.Saves.List()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, recs)

	case http.MethodPost:
		name := r.URL.Query().Get("name")
		if name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		snap, err := h.Game.Snapshot()
		if err == nil {
			err = h.Saves.Save(name, snap)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"name": name, "round": snap.Round})

	case http.MethodDelete:
		err := h.Saves.Delete(r.URL.Query().Get("name"))
		switch {
		case errors.Is(err, storage.ErrSaveNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNoContent)
		}

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Component("debug").WithError(err).Warn("Failed to encode response")
	}
}
