// Package remote exposes snake episodes over HTTP so external controllers can
// drive independent worlds step by step.
package remote

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP controller surface.
type Server struct {
	cfg    *ConfigStore
	store  *Store
	router *gin.Engine
}

// NewServer builds a server reading its limits and episode defaults from cfg.
func NewServer(cfg *ConfigStore) *Server {
	s := &Server{cfg: cfg, store: NewStore()}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	s.routes(router)
	s.router = router
	return s
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"episodes": s.store.Len()})
	})

	eps := r.Group("/episodes")
	eps.GET("", s.listEpisodes)
	eps.POST("", s.createEpisode)

	ep := eps.Group("/:id", s.loadEpisode)
	ep.GET("", s.getEpisode)
	ep.DELETE("", s.deleteEpisode)
	ep.POST("/turn", s.turn)
	ep.POST("/step", s.step)
	ep.POST("/reset", s.reset)
	ep.GET("/view", s.view)
	ep.GET("/params", s.getParams)
	ep.PUT("/params", s.setParams)
	ep.POST("/walls", s.setWalls)
}

// Handler returns the http.Handler serving the API.
func (s *Server) Handler() http.Handler { return s.router }

// Store exposes the episode store.
func (s *Server) Store() *Store { return s.store }

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
