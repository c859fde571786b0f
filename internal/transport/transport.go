// Package transport provides a new server-entity(by ginext) for serve-mode with handlers to serve endpoints
package transport

import (
	"log/slog"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type TaskProcessor interface {
	ProcessTask(task *model.SearchTask) *model.SearchResult
}

type handlers struct {
	proc TaskProcessor
	log  *slog.Logger
}

func NewServer(addr string, proc TaskProcessor, logger *slog.Logger) *http.Server {
	if logger == nil {
		logger = slog.Default()
	}
	h := handlers{proc: proc, log: logger}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	h.log.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		h.log.Warn("failed to parse task from body", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}
	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	res := h.proc.ProcessTask(&task)
	h.log.Debug("task processed", "tid", task.TaskID, "ignore_case", task.IgnoreCase, "found", res.Count)

	ctx.JSON(http.StatusOK, res)
}
