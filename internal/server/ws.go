package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Register mounts the room API and the websocket endpoint.
func (r *Rooms) Register(router *gin.Engine) {
	router.POST("/rooms", r.handleCreate)
	router.GET("/rooms", r.handleList)
	router.GET("/ws/:room", r.handleWS)
}

func (r *Rooms) handleCreate(c *gin.Context) {
	s := r.Create()
	c.JSON(http.StatusCreated, gin.H{"id": s.ID()})
}

func (r *Rooms) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": r.List()})
}

func (r *Rooms) handleWS(c *gin.Context) {
	session, ok := r.Get(c.Param("room"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		r.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	session.HandleConnection(conn)
}
