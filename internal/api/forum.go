package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zechsoft/new-trust-sub003/internal/models"
	"github.com/zechsoft/new-trust-sub003/internal/resources"
	"github.com/zechsoft/new-trust-sub003/internal/ws"
)

type ForumHandler struct {
	forum *resources.Forum
	hub   *ws.Hub
}

func NewForumHandler(forum *resources.Forum, hub *ws.Hub) *ForumHandler {
	return &ForumHandler{forum: forum, hub: hub}
}

func (h *ForumHandler) ensureLoaded(c *gin.Context) bool {
	ctx := c.Request.Context()
	for _, load := range []func() error{
		func() error { return h.forum.Posts.EnsureLoaded(ctx) },
		func() error { return h.forum.Replies.EnsureLoaded(ctx) },
	} {
		if err := load(); err != nil {
			respondError(c, err)
			return false
		}
	}
	return true
}

func (h *ForumHandler) ListReplies(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	postID := c.Param("id")
	if _, ok := h.forum.Posts.Find(postID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, h.forum.RepliesFor(postID))
}

func (h *ForumHandler) AddReply(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	var reply models.ForumReply
	if err := c.ShouldBindJSON(&reply); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	postID := c.Param("id")
	saved, err := h.forum.AddReply(c.Request.Context(), postID, reply)
	if err != nil {
		respondError(c, err)
		return
	}
	h.hub.Notify("forum-replies", "created", saved.ID)
	h.hub.Notify("forum-posts", "updated", postID)
	c.JSON(http.StatusCreated, saved)
}

func (h *ForumHandler) DeleteReply(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	id := c.Param("id")
	ok := confirmed(c)
	removed, err := h.forum.DeleteReply(c.Request.Context(), id, func(models.ForumReply) bool { return ok })
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, h.hub, "forum-replies", id, removed)
}

func (h *ForumHandler) DeletePost(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	id := c.Param("id")
	ok := confirmed(c)
	removed, err := h.forum.DeletePost(c.Request.Context(), id, func(models.ForumPost) bool { return ok })
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, h.hub, "forum-posts", id, removed)
}

func (h *ForumHandler) Leaderboard(c *gin.Context) {
	if err := h.forum.Users.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	n, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	c.JSON(http.StatusOK, h.forum.Leaderboard(n))
}
