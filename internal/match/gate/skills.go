// internal/match/gate/skills.go
package gate

import "strings"

// SkillCategory groups skill tags for the setup form.
type SkillCategory string

const (
	CategoryTech     SkillCategory = "Tech"
	CategoryDesign   SkillCategory = "Design"
	CategoryCreative SkillCategory = "Creative"
	CategoryBusiness SkillCategory = "Business"
)

// SkillTag is a selectable skill with its category.
type SkillTag struct {
	Label    string        `json:"label"`
	Category SkillCategory `json:"category"`
}

// Categories lists skill categories in display order.
var Categories = []SkillCategory{CategoryTech, CategoryDesign, CategoryCreative, CategoryBusiness}

// DefaultSkillCatalog is the selectable skill set offered by the setup form.
var DefaultSkillCatalog = []SkillTag{
	{Label: "React", Category: CategoryTech},
	{Label: "Node.js", Category: CategoryTech},
	{Label: "TypeScript", Category: CategoryTech},
	{Label: "UI Design", Category: CategoryDesign},
	{Label: "Figma", Category: CategoryDesign},
	{Label: "Branding", Category: CategoryCreative},
	{Label: "Content Strategy", Category: CategoryCreative},
	{Label: "Product Thinking", Category: CategoryBusiness},
	{Label: "Growth", Category: CategoryBusiness},
	{Label: "QA", Category: CategoryTech},
}

// SearchSkills returns catalog tags whose label contains the query
// (case-insensitive), grouped by category in display order.
func SearchSkills(catalog []SkillTag, query string) map[SkillCategory][]SkillTag {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make(map[SkillCategory][]SkillTag, len(Categories))
	for _, c := range Categories {
		out[c] = []SkillTag{}
	}

	for _, tag := range catalog {
		if query != "" && !strings.Contains(strings.ToLower(tag.Label), query) {
			continue
		}
		out[tag.Category] = append(out[tag.Category], tag)
	}

	return out
}
