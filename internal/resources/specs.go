package resources

import (
	"strings"

	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/models"
)

var priorityRank = map[string]int{"low": 1, "medium": 2, "high": 3, "urgent": 4}

func countBy[T any](items []T, key func(T) string, labels []string) lr.Stats {
	s := make(lr.Stats, len(labels))
	for _, l := range labels {
		s[l] = 0
	}
	for _, it := range items {
		if k := key(it); k != "" {
			s[k]++
		}
	}
	return s
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func CauseSpec() lr.Spec[models.Cause] {
	return lr.Spec[models.Cause]{
		Name: "causes",
		ID:   func(c models.Cause) string { return c.ID },
		SearchFields: func(c models.Cause) []string {
			return []string{c.Title, c.Description, c.Category}
		},
		Category:  func(c models.Cause) string { return c.Category },
		Status:    func(c models.Cause) string { return c.Status },
		SetStatus: func(c *models.Cause, s string) { c.Status = s },
		Statuses:  models.CauseStatuses,
		Sorts: map[string]lr.Less[models.Cause]{
			"title":    func(a, b models.Cause) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) },
			"progress": func(a, b models.Cause) bool { return a.Progress < b.Progress },
			"raised":   func(a, b models.Cause) bool { return a.RaisedAmount < b.RaisedAmount },
			"goal":     func(a, b models.Cause) bool { return a.GoalAmount < b.GoalAmount },
			"created":  func(a, b models.Cause) bool { return a.CreatedAt.Before(b.CreatedAt) },
		},
		DefaultSort:  "created",
		DefaultOrder: lr.Desc,
		Normalize: func(c *models.Cause) {
			trim(&c.Title, &c.Category)
			if c.Status == "" {
				c.Status = models.CauseStatusActive
			}
			c.RecomputeProgress()
		},
		Validate: func(c models.Cause) error {
			if err := lr.Required(lr.Field{Name: "title", Value: c.Title}, lr.Field{Name: "category", Value: c.Category}); err != nil {
				return err
			}
			if c.GoalAmount < 0 {
				return &lr.ValidationError{Field: "goalAmount", Message: "must not be negative"}
			}
			if c.RaisedAmount < 0 {
				return &lr.ValidationError{Field: "raisedAmount", Message: "must not be negative"}
			}
			return lr.OneOf("status", c.Status, models.CauseStatuses)
		},
		Summarize: func(items []models.Cause) lr.Stats {
			s := countBy(items, func(c models.Cause) string { return c.Status }, models.CauseStatuses)
			var raised, goal, progress float64
			for _, c := range items {
				raised += c.RaisedAmount
				goal += c.GoalAmount
				progress += float64(c.Progress)
			}
			s["raised"] = raised
			s["goal"] = goal
			s["avg_progress"] = 0
			if len(items) > 0 {
				s["avg_progress"] = progress / float64(len(items))
			}
			return s
		},
	}
}

func ContactSpec() lr.Spec[models.ContactSubmission] {
	return lr.Spec[models.ContactSubmission]{
		Name: "contact-submissions",
		ID:   func(c models.ContactSubmission) string { return c.ID },
		SearchFields: func(c models.ContactSubmission) []string {
			return []string{c.Name, c.Email, c.Subject, c.Message}
		},
		Category:  func(c models.ContactSubmission) string { return c.Priority },
		Status:    func(c models.ContactSubmission) string { return c.Status },
		SetStatus: func(c *models.ContactSubmission, s string) { c.Status = s },
		Statuses:  models.ContactStatuses,
		Sorts: map[string]lr.Less[models.ContactSubmission]{
			"date":     func(a, b models.ContactSubmission) bool { return a.CreatedAt.Before(b.CreatedAt) },
			"name":     func(a, b models.ContactSubmission) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
			"priority": func(a, b models.ContactSubmission) bool { return priorityRank[a.Priority] < priorityRank[b.Priority] },
		},
		DefaultSort:  "date",
		DefaultOrder: lr.Desc,
		Normalize: func(c *models.ContactSubmission) {
			trim(&c.Name, &c.Email, &c.Subject)
			c.Email = strings.ToLower(c.Email)
		},
		Validate: func(c models.ContactSubmission) error {
			if err := lr.Required(
				lr.Field{Name: "name", Value: c.Name},
				lr.Field{Name: "email", Value: c.Email},
				lr.Field{Name: "message", Value: c.Message},
			); err != nil {
				return err
			}
			if !strings.Contains(c.Email, "@") {
				return &lr.ValidationError{Field: "email", Message: "is not a valid address"}
			}
			if c.Priority != "" {
				return lr.OneOf("priority", c.Priority, models.Priorities)
			}
			return nil
		},
		Summarize: func(items []models.ContactSubmission) lr.Stats {
			return countBy(items, func(c models.ContactSubmission) string { return c.Status }, models.ContactStatuses)
		},
	}
}

func RegistrationSpec() lr.Spec[models.Registration] {
	return lr.Spec[models.Registration]{
		Name: "registrations",
		ID:   func(r models.Registration) string { return r.ID },
		SearchFields: func(r models.Registration) []string {
			return []string{r.Name, r.Email, r.Phone, r.EventTitle}
		},
		Category: func(r models.Registration) string { return r.EventTitle },
		Status:   func(r models.Registration) string { return r.PaymentStatus },
		Statuses: models.PaymentStatuses,
		Sorts: map[string]lr.Less[models.Registration]{
			"date":         func(a, b models.Registration) bool { return a.RegisteredAt.Before(b.RegisteredAt) },
			"name":         func(a, b models.Registration) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
			"amount":       func(a, b models.Registration) bool { return a.Amount < b.Amount },
			"participants": func(a, b models.Registration) bool { return a.Participants < b.Participants },
		},
		DefaultSort:  "date",
		DefaultOrder: lr.Desc,
		Summarize: func(items []models.Registration) lr.Stats {
			s := countBy(items, func(r models.Registration) string { return r.PaymentStatus }, models.PaymentStatuses)
			var participants, revenue float64
			for _, r := range items {
				participants += float64(r.Participants)
				if r.PaymentStatus == models.PaymentPaid {
					revenue += r.Amount
				}
			}
			s["participants"] = participants
			s["revenue"] = revenue
			return s
		},
		ReadOnly: true,
	}
}

func PostSpec() lr.Spec[models.ForumPost] {
	return lr.Spec[models.ForumPost]{
		Name:  "forum-posts",
		ID:    func(p models.ForumPost) string { return p.ID },
		Clone: models.ForumPost.Clone,
		SearchFields: func(p models.ForumPost) []string {
			return append([]string{p.Title, p.Content, p.Author.Name}, p.Tags...)
		},
		Category: func(p models.ForumPost) string { return p.Category },
		Sorts: map[string]lr.Less[models.ForumPost]{
			"recent":  func(a, b models.ForumPost) bool { return a.CreatedAt.Before(b.CreatedAt) },
			"replies": func(a, b models.ForumPost) bool { return a.Replies < b.Replies },
			"views":   func(a, b models.ForumPost) bool { return a.Views < b.Views },
			"likes":   func(a, b models.ForumPost) bool { return a.Likes < b.Likes },
		},
		DefaultSort:  "recent",
		DefaultOrder: lr.Desc,
		Normalize: func(p *models.ForumPost) {
			trim(&p.Title, &p.Category, &p.Author.Name)
			if p.Replies < 0 {
				p.Replies = 0
			}
		},
		Validate: func(p models.ForumPost) error {
			return lr.Required(
				lr.Field{Name: "title", Value: p.Title},
				lr.Field{Name: "content", Value: p.Content},
				lr.Field{Name: "author.name", Value: p.Author.Name},
			)
		},
		Summarize: func(items []models.ForumPost) lr.Stats {
			s := lr.Stats{"replies": 0, "views": 0, "likes": 0, "pinned": 0}
			for _, p := range items {
				s["replies"] += float64(p.Replies)
				s["views"] += float64(p.Views)
				s["likes"] += float64(p.Likes)
				if p.Pinned {
					s["pinned"]++
				}
			}
			return s
		},
	}
}

func ReplySpec() lr.Spec[models.ForumReply] {
	return lr.Spec[models.ForumReply]{
		Name: "forum-replies",
		ID:   func(r models.ForumReply) string { return r.ID },
		SearchFields: func(r models.ForumReply) []string {
			return []string{r.Content, r.Author.Name}
		},
		Category: func(r models.ForumReply) string { return r.PostID },
		Sorts: map[string]lr.Less[models.ForumReply]{
			"date":  func(a, b models.ForumReply) bool { return a.CreatedAt.Before(b.CreatedAt) },
			"likes": func(a, b models.ForumReply) bool { return a.Likes < b.Likes },
		},
		DefaultSort:  "date",
		DefaultOrder: lr.Asc,
		Validate: func(r models.ForumReply) error {
			return lr.Required(
				lr.Field{Name: "postId", Value: r.PostID},
				lr.Field{Name: "content", Value: r.Content},
				lr.Field{Name: "author.name", Value: r.Author.Name},
			)
		},
	}
}

func UserSpec() lr.Spec[models.ForumUser] {
	return lr.Spec[models.ForumUser]{
		Name: "forum-users",
		ID:   func(u models.ForumUser) string { return u.ID },
		SearchFields: func(u models.ForumUser) []string {
			return []string{u.Name, u.Email, u.Badge}
		},
		Category:  func(u models.ForumUser) string { return u.Badge },
		Status:    func(u models.ForumUser) string { return u.Status },
		SetStatus: func(u *models.ForumUser, s string) { u.Status = s },
		Statuses:  models.ForumUserStatuses,
		Sorts: map[string]lr.Less[models.ForumUser]{
			"points": func(a, b models.ForumUser) bool { return a.Points < b.Points },
			"posts":  func(a, b models.ForumUser) bool { return a.Posts < b.Posts },
			"joined": func(a, b models.ForumUser) bool { return a.JoinedAt.Before(b.JoinedAt) },
			"name":   func(a, b models.ForumUser) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
		},
		DefaultSort:  "points",
		DefaultOrder: lr.Desc,
		Validate: func(u models.ForumUser) error {
			return lr.Required(lr.Field{Name: "name", Value: u.Name})
		},
		Summarize: func(items []models.ForumUser) lr.Stats {
			s := countBy(items, func(u models.ForumUser) string { return u.Status }, models.ForumUserStatuses)
			s["points"] = 0
			for _, u := range items {
				s["points"] += float64(u.Points)
			}
			return s
		},
	}
}

func MentorSpec() lr.Spec[models.Mentor] {
	return lr.Spec[models.Mentor]{
		Name:  "mentors",
		ID:    func(m models.Mentor) string { return m.ID },
		Clone: models.Mentor.Clone,
		SearchFields: func(m models.Mentor) []string {
			return append([]string{m.Name, m.Title, m.Organization}, m.Expertise...)
		},
		Category:  func(m models.Mentor) string { return m.Category },
		Status:    func(m models.Mentor) string { return m.Status },
		SetStatus: func(m *models.Mentor, s string) { m.Status = s },
		Statuses:  models.MentorStatuses,
		Sorts: map[string]lr.Less[models.Mentor]{
			"rating":     func(a, b models.Mentor) bool { return a.Rating < b.Rating },
			"sessions":   func(a, b models.Mentor) bool { return a.Sessions < b.Sessions },
			"experience": func(a, b models.Mentor) bool { return a.ExperienceYears < b.ExperienceYears },
			"name":       func(a, b models.Mentor) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
		},
		DefaultSort:  "rating",
		DefaultOrder: lr.Desc,
		Validate: func(m models.Mentor) error {
			if err := lr.Required(lr.Field{Name: "name", Value: m.Name}, lr.Field{Name: "category", Value: m.Category}); err != nil {
				return err
			}
			if m.Rating < 0 || m.Rating > 5 {
				return &lr.ValidationError{Field: "rating", Message: "must be between 0 and 5"}
			}
			return nil
		},
		Summarize: func(items []models.Mentor) lr.Stats {
			s := countBy(items, func(m models.Mentor) string { return m.Status }, models.MentorStatuses)
			var rating float64
			s["available"] = 0
			for _, m := range items {
				rating += m.Rating
				if m.Available {
					s["available"]++
				}
			}
			s["avg_rating"] = 0
			if len(items) > 0 {
				s["avg_rating"] = rating / float64(len(items))
			}
			return s
		},
	}
}

func VideoSpec() lr.Spec[models.VideoLecture] {
	return lr.Spec[models.VideoLecture]{
		Name: "videos",
		ID:   func(v models.VideoLecture) string { return v.ID },
		SearchFields: func(v models.VideoLecture) []string {
			return []string{v.Title, v.Instructor, v.Category, v.Level}
		},
		Category:  func(v models.VideoLecture) string { return v.Category },
		Status:    func(v models.VideoLecture) string { return v.Status },
		SetStatus: func(v *models.VideoLecture, s string) { v.Status = s },
		Statuses:  models.VideoStatuses,
		Sorts: map[string]lr.Less[models.VideoLecture]{
			"views":     func(a, b models.VideoLecture) bool { return a.Views < b.Views },
			"likes":     func(a, b models.VideoLecture) bool { return a.Likes < b.Likes },
			"duration":  func(a, b models.VideoLecture) bool { return a.DurationMinutes < b.DurationMinutes },
			"published": func(a, b models.VideoLecture) bool { return a.PublishedAt.Before(b.PublishedAt) },
			"title":     func(a, b models.VideoLecture) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) },
		},
		DefaultSort:  "views",
		DefaultOrder: lr.Desc,
		Validate: func(v models.VideoLecture) error {
			if err := lr.Required(lr.Field{Name: "title", Value: v.Title}, lr.Field{Name: "instructor", Value: v.Instructor}); err != nil {
				return err
			}
			if v.Level != "" {
				return lr.OneOf("level", v.Level, models.VideoLevels)
			}
			return nil
		},
		Summarize: func(items []models.VideoLecture) lr.Stats {
			s := countBy(items, func(v models.VideoLecture) string { return v.Status }, models.VideoStatuses)
			s["views"] = 0
			s["minutes"] = 0
			for _, v := range items {
				s["views"] += float64(v.Views)
				s["minutes"] += float64(v.DurationMinutes)
			}
			return s
		},
	}
}

func PaperSpec() lr.Spec[models.Paper] {
	return lr.Spec[models.Paper]{
		Name:  "papers",
		ID:    func(p models.Paper) string { return p.ID },
		Clone: models.Paper.Clone,
		SearchFields: func(p models.Paper) []string {
			return append([]string{p.Title, p.Abstract}, p.Authors...)
		},
		Category:  func(p models.Paper) string { return p.Category },
		Status:    func(p models.Paper) string { return p.Status },
		SetStatus: func(p *models.Paper, s string) { p.Status = s },
		Statuses:  models.PaperStatuses,
		Sorts: map[string]lr.Less[models.Paper]{
			"submitted": func(a, b models.Paper) bool { return a.SubmittedAt.Before(b.SubmittedAt) },
			"downloads": func(a, b models.Paper) bool { return a.Downloads < b.Downloads },
			"title":     func(a, b models.Paper) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) },
		},
		DefaultSort:  "submitted",
		DefaultOrder: lr.Desc,
		Validate: func(p models.Paper) error {
			if err := lr.Required(lr.Field{Name: "title", Value: p.Title}); err != nil {
				return err
			}
			if len(p.Authors) == 0 {
				return &lr.ValidationError{Field: "authors", Message: "at least one author is required"}
			}
			return nil
		},
		Summarize: func(items []models.Paper) lr.Stats {
			s := countBy(items, func(p models.Paper) string { return p.Status }, models.PaperStatuses)
			s["downloads"] = 0
			for _, p := range items {
				s["downloads"] += float64(p.Downloads)
			}
			return s
		},
	}
}

func TicketSpec() lr.Spec[models.Ticket] {
	return lr.Spec[models.Ticket]{
		Name:  "tickets",
		ID:    func(t models.Ticket) string { return t.ID },
		Clone: models.Ticket.Clone,
		SearchFields: func(t models.Ticket) []string {
			return []string{t.Subject, t.RequesterName, t.RequesterEmail, t.ID}
		},
		Category:  func(t models.Ticket) string { return t.Category },
		Status:    func(t models.Ticket) string { return t.Status },
		SetStatus: func(t *models.Ticket, s string) { t.Status = s },
		Statuses:  models.TicketStatuses,
		Sorts: map[string]lr.Less[models.Ticket]{
			"updated":  func(a, b models.Ticket) bool { return a.UpdatedAt.Before(b.UpdatedAt) },
			"created":  func(a, b models.Ticket) bool { return a.CreatedAt.Before(b.CreatedAt) },
			"priority": func(a, b models.Ticket) bool { return priorityRank[a.Priority] < priorityRank[b.Priority] },
		},
		DefaultSort:  "updated",
		DefaultOrder: lr.Desc,
		Validate: func(t models.Ticket) error {
			return lr.Required(
				lr.Field{Name: "subject", Value: t.Subject},
				lr.Field{Name: "requesterName", Value: t.RequesterName},
			)
		},
		Summarize: func(items []models.Ticket) lr.Stats {
			return countBy(items, func(t models.Ticket) string { return t.Status }, models.TicketStatuses)
		},
	}
}
