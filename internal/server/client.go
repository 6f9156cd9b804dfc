package server

import (
	"net/http"
	"time"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/internal/network"
	"github.com/Peritract/meld/pkg/api"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/Peritract/meld/pkg/utils"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	errorBuffer    = 8
)

// ActionLogin - первое сообщение клиента
const ActionLogin = "LOGIN"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и Game
type Client struct {
	Game *engine.Game
	Hub  *network.Broadcaster
	Conn *websocket.Conn

	EntityID domain.EntityID
	Session  string
	updates  chan api.ServerResponse
	errs     chan api.ServerResponse
	done     chan struct{}
}

func NewClient(game *engine.Game, hub *network.Broadcaster, conn *websocket.Conn) *Client {
	return &Client{
		Game:    game,
		Hub:     hub,
		Conn:    conn,
		Session: utils.GenerateID(),
		errs:    make(chan api.ServerResponse, errorBuffer),
		done:    make(chan struct{}),
	}
}

func (c *Client) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "ws",
		"entity_id": c.EntityID,
		"session":   c.Session,
		"remote":    c.Conn.RemoteAddr().String(),
	})
}

// login - HANDSHAKE. Токен - ID игрока; пустой токен тоже принимается,
// клиент узнает свой ID из первого UPDATE.
func (c *Client) login() bool {
	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log().WithError(err).Warn("failed to set read deadline")
	}

	var cmd api.ClientCommand
	if err := c.Conn.ReadJSON(&cmd); err != nil {
		c.log().WithError(err).Warn("Handshake failed")
		return false
	}

	player := c.Game.Player()
	switch {
	case cmd.Action != ActionLogin:
		c.reject("expected LOGIN")
		return false
	case cmd.Token != "" && cmd.Token != player.ID.Key():
		c.reject("unknown token")
		return false
	}

	c.EntityID = player.ID
	c.updates = c.Hub.Register(c.EntityID)
	c.log().Info("Client logged in")
	return true
}

func (c *Client) reject(reason string) {
	c.log().WithField("reason", reason).Warn("Login rejected")
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.Conn.WriteJSON(api.ServerResponse{Type: api.ResponseError, Error: reason})
	_ = c.Conn.Close()
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.EntityID, c.updates)
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			c.log().WithError(err).Debug("failed to close websocket connection")
		}
		c.log().Info("Client disconnected")
	}()

	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log().WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log().WithError(err).Error("WS read error")
			}
			return
		}

		if err := c.Game.Submit(cmd); err != nil {
			c.log().WithError(err).WithField("action", cmd.Action).Debug("Command rejected")
			select {
			case c.errs <- api.ServerResponse{Type: api.ResponseError, Error: err.Error()}:
			default:
			}
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.updates:
			if !ok {
				// Хаб закрыл канал: клиент переподключился или ушел
				_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if !c.write(message) {
				return
			}

		case message := <-c.errs:
			if !c.write(message) {
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log().WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log().WithError(err).Debug("ping failed")
				return
			}

		case <-c.done:
			return
		}
	}
}

func (c *Client) write(msg api.ServerResponse) bool {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.log().WithError(err).Warn("failed to set write deadline")
	}
	if err := c.Conn.WriteJSON(msg); err != nil {
		c.log().WithError(err).Debug("write json message failed")
		return false
	}
	return true
}
