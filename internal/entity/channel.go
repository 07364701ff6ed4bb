package entity

// Channel is one Discord channel of the team server. The catalog below
// mirrors the server layout; the composer only suggests from this list.
type Channel struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Private        bool   `json:"private"`
	LeadershipOnly bool   `json:"leadershipOnly"`
}

var Channels = []Channel{
	{Name: "company-announcements", Category: "HQ & Leadership", Description: "Big news, launches, policy changes.", LeadershipOnly: true},
	{Name: "strategy-room", Category: "HQ & Leadership", Description: "Leadership only; long-term planning.", Private: true, LeadershipOnly: true},
	{Name: "all-hands", Category: "HQ & Leadership", Description: "Whole-team discussions, cross-department topics."},
	{Name: "policies", Category: "HQ & Leadership", Description: "HR rules, leave, expenses, code of conduct."},
	{Name: "industry-news", Category: "HQ & Leadership", Description: "Share market or optometry AI updates that affect strategy."},
	{Name: "project-roadmap", Category: "Operations & Projects", Description: "Current & upcoming projects overview."},
	{Name: "daily-updates", Category: "Operations & Projects", Description: "Yesterday's progress, today's goals, blockers."},
	{Name: "task-board", Category: "Operations & Projects", Description: "Synced with Trello/Notion/Asana."},
	{Name: "meeting-notes", Category: "Operations & Projects", Description: "Summaries + action points from every meeting."},
	{Name: "milestones", Category: "Operations & Projects", Description: "Major achievements & deadlines."},
	{Name: "focus-ai-dev", Category: "Product & Development", Description: "Development logs for Focus AI (v3.0 and beyond)."},
	{Name: "focus-cast-audio", Category: "Product & Development", Description: "Scripts, edits, and publishing plans for Focus Cast."},
	{Name: "focus-axis-simulator", Category: "Product & Development", Description: "Game logic, UI, and simulation tests."},
	{Name: "beta-testing", Category: "Product & Development", Description: "For EMR, Notes, Share — dev feedback & testing reports."},
	{Name: "bug-tracking", Category: "Product & Development", Description: "Record and resolve software bugs."},
	{Name: "feature-planning", Category: "Product & Development", Description: "Brainstorm new capabilities."},
	{Name: "integration-requests", Category: "Product & Development", Description: "API & automation requests."},
	{Name: "content-calendar", Category: "Marketing & Growth", Description: "Plan social posts, ads, and events."},
	{Name: "design-assets", Category: "Marketing & Growth", Description: "Logos, graphics, ad creatives."},
	{Name: "campaign-tracking", Category: "Marketing & Growth", Description: "Monitor ad & social performance."},
	{Name: "prebook-campaign", Category: "Marketing & Growth", Description: "Manage Focus AI 3.0 pre-book launch."},
	{Name: "partnerships", Category: "Marketing & Growth", Description: "Collaborations, influencer outreach."},
	{Name: "social-media-posts", Category: "Marketing & Growth", Description: "Draft & approve content for Instagram/LinkedIn."},
	{Name: "client-onboarding", Category: "Client & Support", Description: "Docs & steps for new clients."},
	{Name: "active-clients", Category: "Client & Support", Description: "Track progress of current clients."},
	{Name: "support-tickets", Category: "Client & Support", Description: "Internal follow-up on client issues."},
	{Name: "success-stories", Category: "Client & Support", Description: "Record testimonials & wins."},
	{Name: "team-intros", Category: "HR & Team Culture", Description: "Welcome new hires."},
	{Name: "wins", Category: "HR & Team Culture", Description: "Celebrate big & small achievements."},
	{Name: "casual-chat", Category: "HR & Team Culture", Description: "Memes, jokes, non-work fun."},
	{Name: "learning-lounge", Category: "HR & Team Culture", Description: "Optometry research, AI trends, skill development."},
	{Name: "feedback-loop", Category: "HR & Team Culture", Description: "Suggestions for improving workflow."},
	{Name: "templates", Category: "Archives & Resources", Description: "Contracts, forms, decks."},
	{Name: "product-manuals", Category: "Archives & Resources", Description: "Internal guides for each Focus-IN tool."},
	{Name: "meeting-archive", Category: "Archives & Resources", Description: "Past meeting notes."},
	{Name: "branding-kit", Category: "Archives & Resources", Description: "Colors, fonts, brand guidelines."},
}

func ChannelNames() []string {
	names := make([]string, 0, len(Channels))
	for _, ch := range Channels {
		names = append(names, ch.Name)
	}
	return names
}

func KnownChannel(name string) bool {
	for _, ch := range Channels {
		if ch.Name == name {
			return true
		}
	}
	return false
}
