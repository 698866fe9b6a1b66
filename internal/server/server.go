package server

import (
	_ "embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/minimax-tictactoe/internal/api/models"
	"ctchen222/minimax-tictactoe/internal/api/response"
	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/config"
	"ctchen222/minimax-tictactoe/internal/hub"
	"ctchen222/minimax-tictactoe/internal/hub/types"
	"ctchen222/minimax-tictactoe/internal/player"
	"ctchen222/minimax-tictactoe/internal/session"
)

var tracer = otel.Tracer("server")

//go:embed web/index.html
var indexHTML []byte

type Server struct {
	hub      *hub.Hub
	defaults config.Game
	upgrader websocket.Upgrader
	engine   *gin.Engine
}

// NewServer builds the gin engine serving the grid page and its websocket endpoint.
func NewServer(h *hub.Hub, defaults config.Game) *Server {
	s := &Server{
		hub:      h,
		defaults: defaults,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestLogger())
	s.RegisterHandlers()
	return s
}

func (s *Server) RegisterHandlers() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/api/options", s.handleOptions)
	s.engine.GET("/api/validate", s.handleValidate)
	s.engine.GET("/ws", s.handleWebSocket)
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleOptions(c *gin.Context) {
	response.SuccessResponse(c, models.OptionsResponse{
		FirstPlayers:   []string{player.Human.String(), player.Computer.String()},
		Difficulties:   []string{bot.Easy.String(), bot.Medium.String(), bot.Hard.String()},
		HumanColors:    config.HumanPalette,
		ComputerColors: config.ComputerPalette,
		Defaults: models.GameOptionsRequest{
			FirstPlayer:   s.defaults.FirstPlayer,
			Difficulty:    s.defaults.Difficulty,
			HumanColor:    s.defaults.HumanColor,
			ComputerColor: s.defaults.ComputerColor,
		},
	})
}

// handleValidate lets the configuration screen report errors before opening the socket.
func (s *Server) handleValidate(c *gin.Context) {
	settings, ok := s.bindSettings(c)
	if !ok {
		return
	}
	response.SuccessResponse(c, gin.H{
		"firstPlayer": settings.FirstPlayer.String(),
		"difficulty":  settings.Difficulty.String(),
	})
}

// handleWebSocket validates the chosen settings, upgrades the connection and hands it to the
// hub, which runs the session.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
		attribute.String("http.method", c.Request.Method),
	))
	defer span.End()

	settings, ok := s.bindSettings(c)
	if !ok {
		span.SetStatus(codes.Error, "Invalid game options")
		return
	}
	span.SetAttributes(
		attribute.String("first_player", settings.FirstPlayer.String()),
		attribute.String("bot.difficulty", settings.Difficulty.String()),
	)

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	playerID := uuid.New().String()
	span.SetAttributes(attribute.String("player.id", playerID))

	req := &types.RegistrationRequest{
		Player:   player.NewPlayer(playerID, conn),
		Settings: settings,
		Ctx:      ctx,
	}
	select {
	case s.hub.Register() <- req:
	case <-s.hub.Done():
		slog.WarnContext(ctx, "Hub stopped, dropping connection", "player.id", playerID)
		_ = conn.Close()
	}
}

func (s *Server) bindSettings(c *gin.Context) (session.Settings, bool) {
	var req models.GameOptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return session.Settings{}, false
	}

	settings, err := req.Game(s.defaults).Settings()
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return session.Settings{}, false
	}
	return settings, true
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.InfoContext(c.Request.Context(), "HTTP request",
			"http.method", c.Request.Method,
			"http.path", c.Request.URL.Path,
			"http.status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
