package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zechsoft/new-trust-sub003/internal/models"
	"github.com/zechsoft/new-trust-sub003/internal/resources"
	"github.com/zechsoft/new-trust-sub003/internal/upload"
	"github.com/zechsoft/new-trust-sub003/internal/ws"
)

// CauseHeroHandler serves the singleton banner above the causes list.
type CauseHeroHandler struct {
	hero    *resources.HeroStore
	uploads *upload.Service
	hub     *ws.Hub
}

func NewCauseHeroHandler(hero *resources.HeroStore, uploads *upload.Service, hub *ws.Hub) *CauseHeroHandler {
	return &CauseHeroHandler{hero: hero, uploads: uploads, hub: hub}
}

func (h *CauseHeroHandler) Get(c *gin.Context) {
	hero, err := h.hero.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

func (h *CauseHeroHandler) Save(c *gin.Context) {
	current, err := h.hero.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(&current); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.hero.Save(c.Request.Context(), current)
	if err != nil {
		respondError(c, err)
		return
	}
	h.hub.Notify("cause-hero", "updated", saved.ID)
	c.JSON(http.StatusOK, saved)
}

func (h *CauseHeroHandler) UploadImage(c *gin.Context) {
	h.uploadMedia(c, upload.TargetHeroImage, "image")
}

func (h *CauseHeroHandler) UploadVideo(c *gin.Context) {
	h.uploadMedia(c, upload.TargetHeroVideo, "video")
}

func (h *CauseHeroHandler) uploadMedia(c *gin.Context, target upload.Target, field string) {
	url, ok := receiveUpload(c, h.uploads, target, field)
	if !ok {
		return
	}
	var (
		hero models.CauseHero
		err  error
	)
	if target == upload.TargetHeroVideo {
		hero, err = h.hero.SetMedia(c.Request.Context(), "", url)
	} else {
		hero, err = h.hero.SetMedia(c.Request.Context(), url, "")
	}
	if err != nil {
		respondError(c, err)
		return
	}
	h.hub.Notify("cause-hero", "updated", hero.ID)
	c.JSON(http.StatusOK, gin.H{"url": url, "hero": hero})
}

// CauseImageHandler uploads a cause image. The returned URL is placed in
// the edit form by the caller; the cause itself changes only on save.
type CauseImageHandler struct {
	uploads *upload.Service
}

func (h *CauseImageHandler) Upload(c *gin.Context) {
	url, ok := receiveUpload(c, h.uploads, upload.TargetCauseImage, "image")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// receiveUpload reads the multipart file in field and stores it. The size
// check runs again on the bytes read, so a lying Content-Length can't skip it.
func receiveUpload(c *gin.Context, svc *upload.Service, target upload.Target, field string) (string, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		respondError(c, &upload.Error{Code: http.StatusBadRequest, Message: upload.MsgEmpty, Err: err})
		return "", false
	}
	limit := target.Kind().Limit()
	if fh.Size > limit {
		respondError(c, &upload.Error{Code: http.StatusRequestEntityTooLarge, Message: upload.MsgTooLarge})
		return "", false
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		respondError(c, err)
		return "", false
	}

	url, err := svc.Upload(c.Request.Context(), target, upload.File{
		Name:     fh.Filename,
		MIMEType: fh.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return url, true
}
