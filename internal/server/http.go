package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/internal/network"
	"github.com/Peritract/meld/internal/storage"
	"github.com/Peritract/meld/internal/version"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Game  *engine.Game
	Hub   *network.Broadcaster
	Port  string
	Debug bool
	// Saves - хранилище слотов; nil отключает /debug/saves
	Saves storage.Repository
}

func New(game *engine.Game, hub *network.Broadcaster, port string) *Server {
	return &Server{
		Game: game,
		Hub:  hub,
		Port: port,
	}
}

// Handler собирает роуты
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	if s.Debug {
		NewDebugHandler(s.Game, s.Saves).RegisterRoutes(mux)

		// Profiling
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return mux
}

// Run запускает HTTP сервер и гасит его при отмене контекста
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithFields(logrus.Fields{
			"component": "http",
			"port":      s.Port,
			"debug":     s.Debug,
		}).Info("meld server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Component("ws").WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Game, s.Hub, conn)
	if !client.login() {
		return
	}

	// Запускаем пампы, затем отправляем текущее состояние
	go client.writePump()
	go client.readPump()
	s.Game.Resync()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(version.Info())
}
