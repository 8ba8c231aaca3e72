package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/zechsoft/new-trust-sub003/internal/assistant"
	"github.com/zechsoft/new-trust-sub003/internal/config"
	"github.com/zechsoft/new-trust-sub003/internal/models"
	"github.com/zechsoft/new-trust-sub003/internal/resources"
	"github.com/zechsoft/new-trust-sub003/internal/upload"
	"github.com/zechsoft/new-trust-sub003/internal/ws"
)

type Deps struct {
	Config    *config.Config
	Resources *resources.Set
	Uploads   *upload.Service
	Assistant *assistant.Engine
	Hub       *ws.Hub
	// Files is set when uploads are stored locally and must be served.
	Files *upload.FileStore
	Log   zerolog.Logger
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger(d.Log), CORS(d.Config.CORSOrigins))

	set := d.Resources
	now := time.Now

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "resources": set.States(), "ws_clients": d.Hub.ClientCount()})
	})
	r.GET("/ws", func(c *gin.Context) {
		d.Hub.ServeWs(c.Writer, c.Request)
	})
	if d.Files != nil {
		r.Static("/uploads", d.Files.BasePath())
	}

	apiGroup := r.Group("/api")

	causes := NewResourceHandler(set.Causes, d.Hub)
	causes.OnCreate = func(c *models.Cause) {
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now()
		}
		c.UpdatedAt = now()
	}
	causes.OnUpdate = func(c *models.Cause) { c.UpdatedAt = now() }
	causeImages := &CauseImageHandler{uploads: d.Uploads}
	causeGroup := apiGroup.Group("/causes")
	{
		causeGroup.POST("/upload-image", causeImages.Upload)
		causeGroup.POST("/reload", causes.Reload)
		causes.Register(causeGroup)
	}

	hero := NewCauseHeroHandler(set.Hero, d.Uploads, d.Hub)
	heroGroup := apiGroup.Group("/cause-hero")
	{
		heroGroup.GET("", hero.Get)
		heroGroup.POST("", hero.Save)
		heroGroup.PUT("", hero.Save)
		heroGroup.POST("/upload-image", hero.UploadImage)
		heroGroup.POST("/upload-video", hero.UploadVideo)
	}

	registrations := NewRegistrationHandler(set.Registrations)
	regGroup := apiGroup.Group("/registrations")
	{
		regGroup.GET("/export", registrations.Export)
		NewResourceHandler(set.Registrations, d.Hub).Register(regGroup)
	}

	contacts := NewResourceHandler(set.Contacts, d.Hub)
	contacts.OnCreate = func(c *models.ContactSubmission) {
		c.CreatedAt, c.UpdatedAt = now(), now()
	}
	contacts.OnUpdate = func(c *models.ContactSubmission) { c.UpdatedAt = now() }
	contacts.Register(apiGroup.Group("/contact-submissions"))

	forum := NewForumHandler(set.Forum, d.Hub)
	posts := NewResourceHandler(set.Posts, d.Hub)
	posts.OnCreate = func(p *models.ForumPost) {
		p.Replies, p.Views, p.Likes = 0, 0, 0
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now()
		}
	}
	forumGroup := apiGroup.Group("/forum")
	{
		postGroup := forumGroup.Group("/posts")
		postGroup.GET("", posts.List)
		postGroup.POST("", posts.Create)
		postGroup.GET("/:id", posts.Get)
		postGroup.PUT("/:id", posts.Update)
		postGroup.DELETE("/:id", forum.DeletePost)
		postGroup.GET("/:id/replies", forum.ListReplies)
		postGroup.POST("/:id/replies", forum.AddReply)

		forumGroup.DELETE("/replies/:id", forum.DeleteReply)

		users := NewResourceHandler(set.Users, d.Hub)
		users.OnCreate = func(u *models.ForumUser) {
			if u.JoinedAt.IsZero() {
				u.JoinedAt = now()
			}
		}
		userGroup := forumGroup.Group("/users")
		userGroup.GET("/leaderboard", forum.Leaderboard)
		users.Register(userGroup)
	}

	NewResourceHandler(set.Mentors, d.Hub).Register(apiGroup.Group("/mentors"))

	videos := NewResourceHandler(set.Videos, d.Hub)
	videos.OnCreate = func(v *models.VideoLecture) {
		if v.Status == "" {
			v.Status = "draft"
		}
		if v.Status == "published" && v.PublishedAt.IsZero() {
			v.PublishedAt = now()
		}
	}
	videos.Register(apiGroup.Group("/videos"))

	papers := NewResourceHandler(set.Papers, d.Hub)
	papers.OnCreate = func(p *models.Paper) {
		if p.Status == "" {
			p.Status = "draft"
		}
		if p.SubmittedAt.IsZero() {
			p.SubmittedAt = now()
		}
	}
	papers.Register(apiGroup.Group("/papers"))

	tickets := NewResourceHandler(set.Tickets, d.Hub)
	tickets.OnCreate = func(t *models.Ticket) {
		if t.Status == "" {
			t.Status = models.TicketStatusOpen
		}
		if t.Messages == nil {
			t.Messages = []models.TicketMessage{}
		}
		t.CreatedAt, t.UpdatedAt = now(), now()
	}
	tickets.OnUpdate = func(t *models.Ticket) { t.UpdatedAt = now() }
	ticketDesk := NewTicketHandler(set.Desk, d.Hub)
	ticketGroup := apiGroup.Group("/tickets")
	{
		tickets.Register(ticketGroup)
		ticketGroup.POST("/:id/messages", ticketDesk.AppendMessage)
	}

	chat := NewAssistantHandler(d.Assistant)
	chatGroup := apiGroup.Group("/assistant/sessions")
	{
		chatGroup.POST("", chat.StartSession)
		chatGroup.GET("/:id", chat.GetSession)
		chatGroup.DELETE("/:id", chat.EndSession)
		chatGroup.POST("/:id/messages", chat.Ask)
	}

	return r
}
