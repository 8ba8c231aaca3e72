package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/ws"
)

// ResourceHandler serves the standard list page endpoints for one entity:
// list with filters, get, create, update, status change and confirmed delete.
type ResourceHandler[T any] struct {
	res *lr.Resource[T]
	hub *ws.Hub

	// OnCreate fills server-side defaults before a new entity is saved.
	OnCreate func(*T)
	// OnUpdate runs after the request body was merged into the draft.
	OnUpdate func(*T)
}

func NewResourceHandler[T any](res *lr.Resource[T], hub *ws.Hub) *ResourceHandler[T] {
	return &ResourceHandler[T]{res: res, hub: hub}
}

func parseQuery(c *gin.Context) lr.Query {
	return lr.Query{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Sort:     c.Query("sort"),
		Order:    lr.ParseOrder(c.Query("order")),
	}
}

// confirmed reports whether the caller confirmed a destructive action.
func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

func (h *ResourceHandler[T]) name() string {
	return h.res.Spec().Name
}

func (h *ResourceHandler[T]) List(c *gin.Context) {
	// A failed load still serves the last good items with the error attached.
	_ = h.res.EnsureLoaded(c.Request.Context())
	c.JSON(http.StatusOK, h.res.View(parseQuery(c)))
}

func (h *ResourceHandler[T]) Reload(c *gin.Context) {
	if err := h.res.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	h.hub.Notify(h.name(), "reloaded", "")
	c.JSON(http.StatusOK, h.res.View(parseQuery(c)))
}

func (h *ResourceHandler[T]) Get(c *gin.Context) {
	if err := h.res.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	item, ok := h.res.Find(c.Param("id"))
	if !ok {
		respondError(c, lr.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[T]) Create(c *gin.Context) {
	if err := h.res.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	d := h.res.NewDraft(*new(T))
	if err := c.ShouldBindJSON(&d.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.OnCreate != nil {
		h.OnCreate(&d.Value)
	}
	saved, err := d.Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	h.hub.Notify(h.name(), "created", h.res.Spec().ID(saved))
	c.JSON(http.StatusCreated, saved)
}

// Update merges the JSON body into a draft of the stored entity, so fields
// the body omits keep their current values.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	if err := h.res.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	id := c.Param("id")
	d, err := h.res.Open(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(&d.Value); err != nil {
		d.Cancel()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if got := h.res.Spec().ID(d.Value); got != id {
		d.Cancel()
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifier in body does not match path"})
		return
	}
	if h.OnUpdate != nil {
		h.OnUpdate(&d.Value)
	}
	saved, err := d.Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	h.hub.Notify(h.name(), "updated", id)
	c.JSON(http.StatusOK, saved)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ResourceHandler[T]) SetStatus(c *gin.Context) {
	if err := h.res.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	saved, err := h.res.SetStatus(c.Request.Context(), id, strings.TrimSpace(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	h.hub.Notify(h.name(), "status_changed", id)
	c.JSON(http.StatusOK, saved)
}

func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	if err := h.res.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	id := c.Param("id")
	ok := confirmed(c)
	removed, err := h.res.Delete(c.Request.Context(), id, func(T) bool { return ok })
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, h.hub, h.name(), id, removed)
}

// respondDeleted reports the outcome of a delete. Only an actual removal is
// broadcast; an unknown id answers 200 with status "not_found".
func respondDeleted(c *gin.Context, hub *ws.Hub, topic, id string, removed bool) {
	if !removed {
		c.JSON(http.StatusOK, gin.H{"status": "not_found", "id": id})
		return
	}
	hub.Notify(topic, "deleted", id)
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}

// Register mounts the handler's routes on g. Status routes are only added
// for entities with a status field; write routes are skipped for read-only
// lists.
func (h *ResourceHandler[T]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	spec := h.res.Spec()
	if spec.ReadOnly {
		return
	}
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	if spec.SetStatus != nil {
		g.PATCH("/:id/status", h.SetStatus)
	}
}
