package server

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danmuck/podctl/internal/observability"
	"github.com/danmuck/podctl/internal/pod/dump"
	"github.com/danmuck/podctl/internal/pod/sample"
	"github.com/danmuck/podctl/internal/pod/typeinfo"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	errEmptyBody   = errors.New("empty request body")
	errBodyTooBig  = errors.New("request body too large")
	errBadEncoding = errors.New("unknown body encoding")
)

// entryView is one registry record as served by the types routes.
type entryView struct {
	ID        uint32 `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Type      uint32 `json:"type"`
	TypeName  string `json:"type_name"`
	Children  string `json:"children,omitempty"`
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": ServiceName,
			"version": Version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.POST("/decode", s.handleDecode)
	v1.GET("/tables", s.handleTables)
	v1.GET("/types", s.handleTypes)
	v1.GET("/types/:id", s.handleType)
	v1.GET("/samples", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"samples": sample.Names()})
	})
	v1.GET("/samples/:name", s.handleSample)
}

// handleDecode decodes the request body. format selects text, json or yaml
// output; encoding=hex accepts a hex string instead of raw bytes.
func (s *Server) handleDecode(c *gin.Context) {
	buf, err := s.readBody(c)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errBodyTooBig) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	node, _ := s.decoder.Decode(buf)
	nodeErrs := node.Errors()
	observability.MarkDecode(c, "http", len(buf), nodeErrs)

	messages := make([]string, 0, len(nodeErrs))
	for _, e := range nodeErrs {
		messages = append(messages, e.Error())
	}

	switch format := c.DefaultQuery("format", "text"); format {
	case "text":
		var lines dump.Lines
		hexdump := s.Hexdump
		if v, ok := c.GetQuery("hex"); ok {
			hexdump, _ = strconv.ParseBool(v)
		}
		dump.Printer{Sink: &lines, Hexdump: hexdump}.Node(0, node)
		c.String(http.StatusOK, lines.String())
	case "json":
		c.JSON(http.StatusOK, gin.H{"root": dump.NewView(node), "errors": messages})
	case "yaml":
		c.YAML(http.StatusOK, gin.H{"root": dump.NewView(node), "errors": messages})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown format %q", format)})
	}
}

func (s *Server) readBody(c *gin.Context) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, s.MaxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.MaxBody {
		return nil, fmt.Errorf("%w: limit %d bytes", errBodyTooBig, s.MaxBody)
	}
	switch enc := c.DefaultQuery("encoding", "raw"); enc {
	case "raw":
	case "hex":
		data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
		if err != nil {
			return nil, fmt.Errorf("hex body: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errBadEncoding, enc)
	}
	if len(data) == 0 {
		return nil, errEmptyBody
	}
	return data, nil
}

func (s *Server) handleTables(c *gin.Context) {
	tables := s.registry.Tables()
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.Name)
	}
	root, _ := s.registry.Table(s.registry.RootRef())
	c.JSON(http.StatusOK, gin.H{"root": root.Name, "tables": names})
}

// scope opens the table named by the table query, or the root table.
func (s *Server) scope(c *gin.Context) (typeinfo.Scope, bool) {
	name := c.Query("table")
	if name == "" {
		return s.registry.Root(), true
	}
	scope, err := s.registry.Scope(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return typeinfo.Scope{}, false
	}
	return scope, true
}

func (s *Server) handleTypes(c *gin.Context) {
	scope, ok := s.scope(c)
	if !ok {
		return
	}
	entries := scope.Entries()
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.entry(e))
	}
	c.JSON(http.StatusOK, gin.H{"table": scope.TableName(), "entries": out})
}

// handleType resolves one id, decimal or 0x-prefixed hex.
func (s *Server) handleType(c *gin.Context) {
	scope, ok := s.scope(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 0, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid id %q", c.Param("id"))})
		return
	}
	info, err := scope.Resolve(uint32(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.entry(info))
}

func (s *Server) handleSample(c *gin.Context) {
	data, err := sample.Build(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", data)
}

func (s *Server) entry(e typeinfo.Info) entryView {
	v := entryView{
		ID:        e.ID,
		Name:      e.Name,
		ShortName: typeinfo.ShortName(e.Name),
		Type:      e.Type,
		TypeName:  s.registry.Root().Name(e.Type),
	}
	if t, ok := s.registry.Table(e.Children); ok {
		v.Children = t.Name
	}
	return v
}
