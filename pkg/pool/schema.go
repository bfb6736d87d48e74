// pkg/pool/schema.go
package pool

// Catalog is the on-disk candidate pool description. Entry order is the
// authored relevance order and is preserved all the way to ranking.
type Catalog struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Entries     []Entry `json:"entries"`
}

// Entry is one opportunity in the catalog.
type Entry struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ProjectType    string    `json:"projectType"`
	MatchScore     int       `json:"matchScore"`
	CurrentMembers int       `json:"currentMembers"`
	TargetMembers  int       `json:"targetMembers"`
	NeededRoles    []string  `json:"neededRoles"`
	Reason         string    `json:"reason"`
	ETA            string    `json:"eta"`
	Breakdown      Breakdown `json:"breakdown"`
}

// Breakdown mirrors the explainable score components.
type Breakdown struct {
	Skills       int `json:"skills"`
	Availability int `json:"availability"`
	Style        int `json:"style"`
}

// catalogSchema validates the structural constraints; the cross-field
// member-count rule is enforced in code.
const catalogSchema = `{
  "type": "object",
  "required": ["version", "entries"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "lastUpdated": {"type": "string"},
    "entries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "projectType", "matchScore", "currentMembers", "targetMembers", "neededRoles", "reason", "eta", "breakdown"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "projectType": {"type": "string", "minLength": 1},
          "matchScore": {"type": "integer", "minimum": 0, "maximum": 100},
          "currentMembers": {"type": "integer", "minimum": 1},
          "targetMembers": {"type": "integer", "minimum": 1},
          "neededRoles": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          },
          "reason": {"type": "string"},
          "eta": {"type": "string"},
          "breakdown": {
            "type": "object",
            "required": ["skills", "availability", "style"],
            "properties": {
              "skills": {"type": "integer", "minimum": 0, "maximum": 100},
              "availability": {"type": "integer", "minimum": 0, "maximum": 100},
              "style": {"type": "integer", "minimum": 0, "maximum": 100}
            }
          }
        }
      }
    }
  }
}`
