package gate

import (
	"testing"

	"matchmaking-engine/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createCompleteProfile() *models.MatchProfile {
	return &models.MatchProfile{
		Mode:             models.ModeJoinExisting,
		Role:             "Frontend Developer",
		ProjectType:      "SaaS",
		AvailabilityBand: models.Availability10To20,
		TimelineBand:     models.TimelineSprint,
		Skills:           []string{"React", "UI Design"},
	}
}

// ==========================
// Evaluate Tests
// ==========================

func TestEvaluate_CompleteProfile(t *testing.T) {
	res := Evaluate(createCompleteProfile())

	assert.True(t, res.Ready)
	assert.Empty(t, res.Missing)
	assert.Equal(t, 6, res.Completed)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, 100.0, res.CompletionPercent())
	assert.Equal(t, "Ready to save", res.GuidanceText())
}

func TestEvaluate_MissingFields(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*models.MatchProfile)
		wantMissing []Field
	}{
		{
			name:        "missing role",
			mutate:      func(p *models.MatchProfile) { p.Role = "" },
			wantMissing: []Field{FieldRole},
		},
		{
			name:        "missing project type",
			mutate:      func(p *models.MatchProfile) { p.ProjectType = "" },
			wantMissing: []Field{FieldProjectType},
		},
		{
			name:        "missing availability",
			mutate:      func(p *models.MatchProfile) { p.AvailabilityBand = "" },
			wantMissing: []Field{FieldAvailabilityBand},
		},
		{
			name:        "missing timeline",
			mutate:      func(p *models.MatchProfile) { p.TimelineBand = "" },
			wantMissing: []Field{FieldTimelineBand},
		},
		{
			name:        "empty skills",
			mutate:      func(p *models.MatchProfile) { p.Skills = nil },
			wantMissing: []Field{FieldSkills},
		},
		{
			name:        "invalid mode",
			mutate:      func(p *models.MatchProfile) { p.Mode = "solo" },
			wantMissing: []Field{FieldMode},
		},
		{
			name: "multiple missing keep fixed order",
			mutate: func(p *models.MatchProfile) {
				p.Mode = ""
				p.ProjectType = ""
				p.Skills = nil
			},
			wantMissing: []Field{FieldMode, FieldProjectType, FieldSkills},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createCompleteProfile()
			tt.mutate(p)

			res := Evaluate(p)

			assert.False(t, res.Ready)
			assert.Equal(t, tt.wantMissing, res.Missing)
			assert.Equal(t, 6-len(tt.wantMissing), res.Completed)
		})
	}
}

func TestEvaluate_EmptyProfile(t *testing.T) {
	res := Evaluate(&models.MatchProfile{})

	assert.False(t, res.Ready)
	assert.Equal(t, []Field{
		FieldMode, FieldRole, FieldProjectType,
		FieldAvailabilityBand, FieldTimelineBand, FieldSkills,
	}, res.Missing)
	assert.Equal(t, 0.0, res.CompletionPercent())
}

func TestEvaluate_NilProfile(t *testing.T) {
	res := Evaluate(nil)

	assert.False(t, res.Ready)
	assert.Len(t, res.Missing, 6)
}

func TestEvaluate_NoCaching(t *testing.T) {
	p := createCompleteProfile()

	assert.True(t, Evaluate(p).Ready)

	// Readiness must be recomputed after any field change.
	p.Role = ""
	res := Evaluate(p)
	assert.False(t, res.Ready)
	assert.Equal(t, []Field{FieldRole}, res.Missing)

	p.Role = "Backend Developer"
	assert.True(t, Evaluate(p).Ready)
}

func TestResult_GuidanceText(t *testing.T) {
	p := createCompleteProfile()
	p.Role = ""
	p.Skills = nil

	res := Evaluate(p)

	assert.Equal(t, "Missing: Role, Skills", res.GuidanceText())
	assert.Equal(t, []string{"role", "skills"}, res.MissingFieldNames())
}

// ==========================
// Skill Catalog Tests
// ==========================

func TestSearchSkills_EmptyQueryReturnsAll(t *testing.T) {
	grouped := SearchSkills(DefaultSkillCatalog, "")

	total := 0
	for _, c := range Categories {
		total += len(grouped[c])
	}
	assert.Equal(t, len(DefaultSkillCatalog), total)
	assert.Len(t, grouped[CategoryTech], 4)
	assert.Len(t, grouped[CategoryDesign], 2)
}

func TestSearchSkills_CaseInsensitiveSubstring(t *testing.T) {
	grouped := SearchSkills(DefaultSkillCatalog, "rEaC")

	assert.Equal(t, []SkillTag{{Label: "React", Category: CategoryTech}}, grouped[CategoryTech])
	assert.Empty(t, grouped[CategoryBusiness])
}

func TestSearchSkills_NoMatches(t *testing.T) {
	grouped := SearchSkills(DefaultSkillCatalog, "cobol")

	for _, c := range Categories {
		assert.Empty(t, grouped[c])
	}
}
