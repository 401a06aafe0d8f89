package search

import (
	"context"
	"strings"
)

// Project is a research project entry. Projects are not yet database-backed;
// the fixed list below feeds the same Source seam as the real entities so a
// future table swap does not touch the merge logic.
type Project struct {
	ID          string
	Title       string
	Description string
	Lead        string
}

type ProjectSource struct {
	Projects []Project
}

func NewProjectSource() ProjectSource {
	return ProjectSource{Projects: defaultProjects}
}

func (s ProjectSource) Name() string { return "projects" }

func (s ProjectSource) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	lowered := strings.ToLower(query)
	var results []Result
	for _, p := range s.Projects {
		if len(results) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Title), lowered) ||
			strings.Contains(strings.ToLower(p.Description), lowered) {
			results = append(results, Result{
				ID:       p.ID,
				Title:    p.Title,
				Type:     "project",
				Subtitle: p.Lead,
			})
		}
	}
	return results, nil
}

var defaultProjects = []Project{
	{
		ID:          "proj-001",
		Title:       "Flood Prediction for the Surma Basin",
		Description: "Machine learning models over rainfall and river gauge data for early flood warnings.",
		Lead:        "Dr. Rahim Uddin",
	},
	{
		ID:          "proj-002",
		Title:       "Bangla Natural Language Processing Toolkit",
		Description: "Tokenizers, embeddings, and benchmark corpora for Bangla text.",
		Lead:        "Dr. Farzana Akter",
	},
	{
		ID:          "proj-003",
		Title:       "Low-Cost Air Quality Sensor Network",
		Description: "Campus-wide particulate matter monitoring with LoRa sensor nodes.",
		Lead:        "Dr. Kamal Hossain",
	},
	{
		ID:          "proj-004",
		Title:       "Solar Microgrid Load Forecasting",
		Description: "Short-horizon demand forecasting for rural solar microgrids.",
		Lead:        "Dr. Nusrat Jahan",
	},
	{
		ID:          "proj-005",
		Title:       "Medicinal Plant Genome Archive",
		Description: "Sequencing and cataloguing genomes of regional medicinal plants.",
		Lead:        "Dr. Abdul Karim",
	},
}
