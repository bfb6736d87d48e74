// internal/match/browse/seed.go
package browse

import "matchmaking-engine/internal/models"

// DefaultProjects returns the browse table rows in relevance order.
func DefaultProjects() []models.Project {
	return []models.Project{
		{
			ID:           "1",
			Name:         "FinTech Dashboard Redesign",
			Roles:        []string{"Product Designer", "Frontend Developer"},
			Commitment:   "10-20 hrs/week",
			MatchScore:   94,
			Posted:       "2d ago",
			TeamSize:     3,
			OpenRoles:    2,
			ResponseTime: "< 24h",
		},
		{
			ID:           "2",
			Name:         "AI Content Generator",
			Roles:        []string{"ML Engineer", "Backend Developer"},
			Commitment:   "Full-time",
			MatchScore:   88,
			Posted:       "4h ago",
			TeamSize:     2,
			OpenRoles:    2,
			ResponseTime: "< 12h",
		},
		{
			ID:           "3",
			Name:         "E-commerce Mobile App",
			Roles:        []string{"React Native Dev"},
			Commitment:   "10-20 hrs/week",
			MatchScore:   76,
			Posted:       "1d ago",
			TeamSize:     4,
			OpenRoles:    1,
			ResponseTime: "1-2 days",
		},
		{
			ID:           "4",
			Name:         "Healthcare Patient Portal",
			Roles:        []string{"Full Stack Dev", "Product Manager"},
			Commitment:   "20+ hrs/week",
			MatchScore:   62,
			Posted:       "3d ago",
			TeamSize:     5,
			OpenRoles:    2,
			ResponseTime: "2-3 days",
		},
		{
			ID:           "5",
			Name:         "Crypto Wallet Integration",
			Roles:        []string{"Blockchain Dev", "Security Specialist"},
			Commitment:   "5-10 hrs/week",
			MatchScore:   45,
			Posted:       "5d ago",
			TeamSize:     2,
			OpenRoles:    2,
			ResponseTime: "3+ days",
		},
		{
			ID:           "6",
			Name:         "SaaS Marketing Site",
			Roles:        []string{"Frontend Developer", "Copywriter"},
			Commitment:   "Project-based",
			MatchScore:   91,
			Posted:       "12h ago",
			TeamSize:     3,
			OpenRoles:    1,
			ResponseTime: "< 24h",
		},
		{
			ID:           "7",
			Name:         "Internal Tools Migration",
			Roles:        []string{"DevOps Engineer"},
			Commitment:   "Full-time",
			MatchScore:   58,
			Posted:       "1w ago",
			TeamSize:     6,
			OpenRoles:    1,
			ResponseTime: "2-3 days",
		},
		{
			ID:           "8",
			Name:         "Social Media Analytics",
			Roles:        []string{"Data Scientist", "Frontend Developer"},
			Commitment:   "20+ hrs/week",
			MatchScore:   82,
			Posted:       "2d ago",
			TeamSize:     4,
			OpenRoles:    2,
			ResponseTime: "< 24h",
		},
		{
			ID:           "9",
			Name:         "Legacy System Refactor",
			Roles:        []string{"Backend Developer"},
			Commitment:   "20+ hrs/week",
			MatchScore:   35,
			Posted:       "4d ago",
			TeamSize:     5,
			OpenRoles:    1,
			ResponseTime: "3+ days",
		},
	}
}

// DefaultWeeklyMatches returns the curated weekly match list.
func DefaultWeeklyMatches() []models.Match {
	return []models.Match{
		{
			ID:           "m1",
			ProjectName:  "Indie SaaS Analytics",
			ProjectStage: "Prototype",
			MatchScore:   89,
			Role:         "UI Designer",
			Commitment:   "10-15 hrs/week",
			Duration:     "3 months",
			Status:       models.MatchStatusNew,
			Breakdown:    models.ScoreBreakdown{Skills: 92, Availability: 84, Style: 90},
			Reasoning: []string{
				"They need a UI designer to build the dashboard interface",
				"You prefer early-stage projects with learning opportunities",
				"Both prefer async collaboration with minimal meetings",
			},
		},
		{
			ID:           "m2",
			ProjectName:  "Open Source Doc Tool",
			ProjectStage: "Active Development",
			MatchScore:   84,
			Role:         "Technical Writer",
			Commitment:   "5-8 hrs/week",
			Duration:     "Ongoing",
			Status:       models.MatchStatusNew,
			Breakdown:    models.ScoreBreakdown{Skills: 88, Availability: 82, Style: 85},
			Reasoning: []string{
				"Perfect skill match for their documentation overhaul",
				"Aligns with your desire to contribute to open source",
				"Zero-meeting culture fits your preference",
			},
		},
		{
			ID:           "m3",
			ProjectName:  "AI Habit Tracker",
			ProjectStage: "Idea",
			MatchScore:   78,
			Role:         "Product Partner",
			Commitment:   "20 hrs/week",
			Duration:     "6 months",
			Status:       models.MatchStatusNew,
			Breakdown:    models.ScoreBreakdown{Skills: 80, Availability: 74, Style: 79},
			Reasoning: []string{
				"Strong domain fit for wellness tech",
				"They need a non-technical co-founder",
				"High commitment level matches your availability",
			},
		},
	}
}
