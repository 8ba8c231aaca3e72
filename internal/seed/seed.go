// Package seed holds the demo records used by in-memory mode and by the
// seed command.
package seed

import (
	"time"

	"github.com/zechsoft/new-trust-sub003/internal/models"
)

var base = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return base.AddDate(0, 0, n)
}

func Causes() []models.Cause {
	causes := []models.Cause{
		{ID: "cause-1", Title: "Clean Water for Villages", Description: "Borewells and filters for 12 villages in Marathwada.", Category: "health", RaisedAmount: 4500, GoalAmount: 10000, Status: models.CauseStatusActive, Image: "/images/causes/water.jpg", CreatedAt: day(0)},
		{ID: "cause-2", Title: "Books for Every Child", Description: "School kits and library books for government schools.", Category: "education", RaisedAmount: 9999, GoalAmount: 10000, Status: models.CauseStatusActive, Image: "/images/causes/books.jpg", CreatedAt: day(3)},
		{ID: "cause-3", Title: "Free Legal Aid Clinics", Description: "Weekend clinics with volunteer lawyers.", Category: "legal", RaisedAmount: 25000, GoalAmount: 20000, Status: models.CauseStatusCompleted, Image: "/images/causes/legal.jpg", CreatedAt: day(7)},
		{ID: "cause-4", Title: "Winter Blankets", Description: "Blankets for people sleeping rough in Delhi.", Category: "relief", RaisedAmount: 1200, GoalAmount: 0, Status: models.CauseStatusPaused, Image: "/images/causes/blankets.jpg", CreatedAt: day(10)},
	}
	for i := range causes {
		causes[i].RecomputeProgress()
	}
	return causes
}

func Hero() models.CauseHero {
	return models.CauseHero{
		ID:          models.HeroID,
		Title:       "Every Cause Counts",
		Subtitle:    "Support the work that matters to you",
		Description: "Pick a cause and follow its progress from first rupee to finished project.",
		ImageURL:    "/images/hero/causes.jpg",
		CTAText:     "Donate now",
		CTALink:     "/donate",
		UpdatedAt:   day(0),
	}
}

func ContactSubmissions() []models.ContactSubmission {
	return []models.ContactSubmission{
		{ID: "contact-1", Name: "Meera Iyer", Email: "meera.iyer@example.org", Phone: "+91 98450 11111", Subject: "Volunteering", Message: "I would like to volunteer at the weekend legal clinic.", Status: models.ContactStatusNew, Priority: "medium", CreatedAt: day(1), UpdatedAt: day(1)},
		{ID: "contact-2", Name: "Rahul Verma", Email: "rahul.v@example.org", Subject: "Donation receipt", Message: "I have not received my 80G receipt for last month.", Status: models.ContactStatusRead, Priority: "high", CreatedAt: day(2), UpdatedAt: day(3)},
		{ID: "contact-3", Name: "Fatima Khan", Email: "fatima.k@example.org", Phone: "+91 99300 22222", Subject: "Partnership", Message: "Our college NSS unit wants to partner on the blood drive.", Status: models.ContactStatusReplied, Priority: "low", CreatedAt: day(4), UpdatedAt: day(6)},
		{ID: "contact-4", Name: "Sanjay Patil", Email: "sanjay.patil@example.org", Subject: "Old enquiry", Message: "Please remove me from the newsletter.", Status: models.ContactStatusArchived, Priority: "low", CreatedAt: day(5), UpdatedAt: day(9)},
	}
}

func Registrations() []models.Registration {
	return []models.Registration{
		{ID: "reg-1", EventID: "event-1", EventTitle: "Legal Awareness Camp, Pune", Name: "Priya Sharma", Email: "priya.sharma@example.org", Phone: "+91 98200 00001", Participants: 2, PaymentStatus: models.PaymentPaid, Amount: 500, RegisteredAt: day(2)},
		{ID: "reg-2", EventID: "event-2", EventTitle: "Blood Donation Drive", Name: "Arjun Mehta", Email: "arjun.m@example.org", Phone: "+91 98200 00002", Participants: 1, PaymentStatus: models.PaymentFree, RegisteredAt: day(3)},
		{ID: "reg-3", EventID: "event-1", EventTitle: "Legal Awareness Camp, Pune", Name: "Kavya Nair", Email: "kavya.nair@example.org", Participants: 3, PaymentStatus: models.PaymentPending, Amount: 750, RegisteredAt: day(4)},
		{ID: "reg-4", EventID: "event-3", EventTitle: "Tree Plantation Walk", Name: "Imran Shaikh", Email: "imran.s@example.org", Phone: "+91 98200 00004", Participants: 4, PaymentStatus: models.PaymentPaid, Amount: 400, RegisteredAt: day(6)},
	}
}

func ForumUsers() []models.ForumUser {
	return []models.ForumUser{
		{ID: "user-1", Name: "Priya Sharma", Email: "priya.sharma@example.org", Badge: "Expert", Points: 1240, Posts: 2, Status: "active", JoinedAt: day(-200)},
		{ID: "user-2", Name: "Arjun Mehta", Email: "arjun.m@example.org", Badge: "Contributor", Points: 560, Posts: 1, Status: "active", JoinedAt: day(-120)},
		{ID: "user-3", Name: "Neha Joshi", Email: "neha.j@example.org", Badge: "Newcomer", Points: 40, Posts: 0, Status: "suspended", JoinedAt: day(-10)},
	}
}

func author(u models.ForumUser) models.ForumAuthor {
	return models.ForumAuthor{Name: u.Name, Badge: u.Badge, Points: u.Points}
}

func ForumPosts() []models.ForumPost {
	users := ForumUsers()
	return []models.ForumPost{
		{ID: "post-1", Title: "How to file an RTI online?", Content: "Step by step guide to the RTI online portal for central ministries.", Category: "legal", Tags: []string{"rti", "guide"}, Author: author(users[0]), Replies: 2, Views: 340, Likes: 25, Pinned: true, CreatedAt: day(1)},
		{ID: "post-2", Title: "Tenant rights when the landlord sells", Content: "Does a new owner have to honour my existing rent agreement?", Category: "property", Tags: []string{"tenant"}, Author: author(users[1]), Replies: 1, Views: 120, Likes: 8, CreatedAt: day(4)},
		{ID: "post-3", Title: "Volunteer meetup this Saturday", Content: "Planning session for the next legal awareness camp.", Category: "community", Tags: []string{"events"}, Author: author(users[0]), Views: 58, Likes: 3, CreatedAt: day(8)},
	}
}

func ForumReplies() []models.ForumReply {
	users := ForumUsers()
	return []models.ForumReply{
		{ID: "reply-1", PostID: "post-1", Author: author(users[1]), Content: "Thanks, the fee payment step was the confusing part.", Likes: 4, CreatedAt: day(2)},
		{ID: "reply-2", PostID: "post-1", Author: author(users[2]), Content: "Does this work for state departments too?", Likes: 1, CreatedAt: day(3)},
		{ID: "reply-3", PostID: "post-2", Author: author(users[0]), Content: "Yes, a registered lease binds the buyer.", Likes: 6, CreatedAt: day(5)},
	}
}

func Mentors() []models.Mentor {
	return []models.Mentor{
		{ID: "mentor-1", Name: "Adv. Ritu Malhotra", Title: "Senior Advocate", Organization: "Delhi High Court", Category: "legal", Expertise: []string{"family law", "mediation"}, Bio: "Twenty years of family law practice.", Rating: 4.9, Sessions: 180, ExperienceYears: 20, Available: true, Status: "active"},
		{ID: "mentor-2", Name: "Dr. Vikram Rao", Title: "Public Health Specialist", Organization: "AIIMS", Category: "health", Expertise: []string{"community health", "nutrition"}, Bio: "Runs rural health outreach programmes.", Rating: 4.6, Sessions: 95, ExperienceYears: 14, Available: false, Status: "active"},
		{ID: "mentor-3", Name: "Ananya Gupta", Title: "Program Manager", Organization: "Teach For India", Category: "education", Expertise: []string{"curriculum", "fundraising"}, Rating: 4.2, Sessions: 40, ExperienceYears: 6, Available: true, Status: "inactive"},
	}
}

func VideoLectures() []models.VideoLecture {
	return []models.VideoLecture{
		{ID: "video-1", Title: "Understanding the RTI Act", Instructor: "Adv. Ritu Malhotra", Category: "legal", Level: "beginner", DurationMinutes: 42, Views: 5200, Likes: 410, VideoURL: "/videos/rti-basics.mp4", Status: "published", PublishedAt: day(-30)},
		{ID: "video-2", Title: "Consumer Complaints on e-Daakhil", Instructor: "Kiran Desai", Category: "legal", Level: "intermediate", DurationMinutes: 28, Views: 1900, Likes: 150, VideoURL: "/videos/e-daakhil.mp4", Status: "published", PublishedAt: day(-12)},
		{ID: "video-3", Title: "First Aid for Volunteers", Instructor: "Dr. Vikram Rao", Category: "health", Level: "beginner", DurationMinutes: 55, Views: 0, Likes: 0, Status: "draft"},
	}
}

func Papers() []models.Paper {
	return []models.Paper{
		{ID: "paper-1", Title: "Access to Legal Aid in Rural Maharashtra", Authors: []string{"Priya Sharma", "Arjun Mehta"}, Abstract: "Survey of 40 villages on awareness of free legal aid.", Category: "legal", Status: "published", Downloads: 312, FileURL: "/papers/legal-aid-rural.pdf", SubmittedAt: day(-60)},
		{ID: "paper-2", Title: "Water Quality After Community Borewells", Authors: []string{"Vikram Rao"}, Abstract: "Before and after testing in 12 villages.", Category: "health", Status: "under_review", Downloads: 0, SubmittedAt: day(-5)},
		{ID: "paper-3", Title: "Library Use in Government Schools", Authors: []string{"Ananya Gupta"}, Category: "education", Status: "draft", SubmittedAt: day(-1)},
	}
}

func Tickets() []models.Ticket {
	return []models.Ticket{
		{
			ID: "ticket-1", Subject: "Donation not reflected", RequesterName: "Rahul Verma", RequesterEmail: "rahul.v@example.org",
			Category: "donations", Priority: "high", Status: models.TicketStatusOpen,
			Messages: []models.TicketMessage{
				{ID: "msg-1", Sender: models.SenderUser, Body: "I donated Rs. 2000 yesterday but the cause page shows no change.", SentAt: day(2)},
			},
			CreatedAt: day(2), UpdatedAt: day(2),
		},
		{
			ID: "ticket-2", Subject: "Certificate for volunteering", RequesterName: "Meera Iyer", RequesterEmail: "meera.iyer@example.org",
			Category: "volunteering", Priority: "low", Status: models.TicketStatusResolved,
			Messages: []models.TicketMessage{
				{ID: "msg-2", Sender: models.SenderUser, Body: "Can I get a certificate for the camp?", SentAt: day(3)},
				{ID: "msg-3", Sender: models.SenderSupport, Body: "Sent to your email, thank you for volunteering!", SentAt: day(4)},
			},
			CreatedAt: day(3), UpdatedAt: day(4),
		},
		{
			ID: "ticket-3", Subject: "Cannot log in to forum", RequesterName: "Neha Joshi", RequesterEmail: "neha.j@example.org",
			Category: "technical", Priority: "medium", Status: models.TicketStatusPending,
			Messages: []models.TicketMessage{
				{ID: "msg-4", Sender: models.SenderUser, Body: "My account says suspended.", SentAt: day(5)},
			},
			CreatedAt: day(5), UpdatedAt: day(5),
		},
		{
			ID: "ticket-4", Subject: "Urgent: event venue changed?", RequesterName: "Imran Shaikh", RequesterEmail: "imran.s@example.org",
			Category: "events", Priority: "high", Status: models.TicketStatusUrgent,
			Messages: []models.TicketMessage{
				{ID: "msg-5", Sender: models.SenderUser, Body: "The map link for the plantation walk is broken.", SentAt: day(6)},
			},
			CreatedAt: day(6), UpdatedAt: day(6),
		},
		{
			ID: "ticket-5", Subject: "Refund for cancelled workshop", RequesterName: "Kavya Nair", RequesterEmail: "kavya.nair@example.org",
			Category: "donations", Priority: "medium", Status: models.TicketStatusResolved,
			Messages: []models.TicketMessage{
				{ID: "msg-6", Sender: models.SenderUser, Body: "Workshop was cancelled, please refund.", SentAt: day(7)},
				{ID: "msg-7", Sender: models.SenderSupport, Body: "Refund processed.", SentAt: day(8)},
			},
			CreatedAt: day(7), UpdatedAt: day(8),
		},
	}
}
