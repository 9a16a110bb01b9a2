package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/catalog"
	"github.com/danmuck/ocppcodec/internal/protocol/envelope"
	"github.com/danmuck/ocppcodec/internal/protocol/schema"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "ocppcodec"

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"uptime":   time.Since(s.started).String(),
			"service":  serviceName,
			"protocol": s.cfg.Protocol.String(),
		})
	})
	if s.cfg.MetricsEnabled {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := s.router.Group("/v1/:version")
	v1.GET("/actions", s.listActions)
	v1.GET("/actions/:action", s.describeAction)
	v1.POST("/decode", s.decodeFrame)
}

func (s *Server) codecFor(c *gin.Context) (*envelope.Codec, bool) {
	v, err := protocol.ParseVersion(c.Param("version"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return s.codecs[v], true
}

func (s *Server) listActions(c *gin.Context) {
	codec, ok := s.codecFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"version":     codec.Version.String(),
		"actions":     catalog.Actions(codec.Version),
		"error_codes": envelope.ErrorCodes(codec.Version),
	})
}

type fieldView struct {
	Key      string `json:"key"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

func describe(t *schema.Type) []fieldView {
	out := make([]fieldView, 0, len(t.Fields))
	for _, f := range t.Fields {
		out = append(out, fieldView{Key: f.Key, Kind: f.Value.Name(), Required: f.Required})
	}
	return out
}

func (s *Server) describeAction(c *gin.Context) {
	codec, ok := s.codecFor(c)
	if !ok {
		return
	}
	cat, _ := catalog.For(codec.Version)
	a, ok := cat.Action(c.Param("action"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown action " + c.Param("action")})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"version":  codec.Version.String(),
		"action":   a.Name,
		"request":  describe(a.Request),
		"response": describe(a.Response),
	})
}

// decodeFrame parses the posted frame and answers with its re-encoded form,
// or with the failure and the CallError a receiver would send back.
func (s *Server) decodeFrame(c *gin.Context) {
	codec, ok := s.codecFor(c)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, int64(codec.Limits.MaxFrameBytes)))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	env, err := codec.Decode(body, c.Query("action"))
	if err != nil {
		s.decodeFailed(c, codec, err)
		return
	}

	resp := gin.H{
		"message_type": env.MessageType().String(),
		"unique_id":    env.ID(),
	}
	normalized, err := codec.Encode(env)
	if err != nil {
		resp["encode_error"] = err.Error()
	} else {
		resp["frame"] = json.RawMessage(normalized)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) decodeFailed(c *gin.Context, codec *envelope.Codec, err error) {
	resp := gin.H{"error": err.Error()}
	if class := protocol.ErrorClass(err); class != "" {
		resp["class"] = class
	}
	if path, ok := protocol.ErrorPath(err); ok {
		resp["path"] = path
	}
	reply, rerr := codec.Encode(envelope.ErrorReply(err, codec.Version))
	if rerr != nil {
		s.logger.Error().Err(rerr).Msg("encode_error_reply")
	} else {
		resp["reply"] = json.RawMessage(reply)
	}
	c.JSON(http.StatusUnprocessableEntity, resp)
}
