package content

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/eskwela/admin/core"
)

// Demo vocabulary cycled through by the generator.
var (
	titles = []string{
		"Ancient Philippines Artifacts", "Solar System Model", "Traditional Filipino Houses",
		"Human Body Systems", "Philippine Heroes Monument", "Plant Life Cycle",
		"Rizal's Life Timeline", "Water Cycle Demonstration", "Bayanihan Spirit",
		"Animal Habitats in Philippines",
	}
	descriptions = []string{
		"Explore ancient Filipino artifacts and their historical significance",
		"Interactive 3D model of our solar system with planetary details",
		"Traditional architecture of Filipino houses across different regions",
		"Comprehensive overview of human body systems and functions",
		"Monument dedicated to Philippine national heroes",
		"Complete plant life cycle from seed to mature plant",
		"Timeline of Dr. Jose Rizal's life and contributions",
		"Interactive demonstration of the water cycle process",
		"Understanding the Filipino spirit of community cooperation",
		"Diverse animal habitats found throughout the Philippines",
	}
)

// Generate produces exactly n schema-valid demo AR content items with
// 1-based sequential ids. Output is a pure function of rng.
func Generate(rng *rand.Rand, n int) []ARContent {
	now := core.PoolEpoch
	items := make([]ARContent, 0, n)
	for i := 0; i < n; i++ {
		subject := core.Subjects[rng.Intn(len(core.Subjects))]
		typ := Type3DModel
		ext := ".glb"
		// 3d models are larger than audio clips
		size := fmt.Sprintf("%.1fMB", rng.Float64()*50+10)
		if rng.Intn(2) == 1 {
			typ = TypeAudio
			ext = ".mp3"
			size = fmt.Sprintf("%.1fMB", rng.Float64()*10+2)
		}
		title := titles[i%len(titles)]
		fileName := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ext

		item := ARContent{
			ID:          i + 1,
			Title:       title,
			Description: descriptions[i%len(descriptions)],
			Subject:     subject,
			GradeLevel:  core.GradeLevels[rng.Intn(len(core.GradeLevels))],
			Type:        typ,
			QRCode:      QRCodeFor(subject, i+1),
			Thumbnail:   fmt.Sprintf("/thumbnails/%s_%d.jpg", typ, i+1),
			FileURL:     "/content/" + fileName,
			FileName:    fileName,
			FileSize:    size,
			CreatedAt:   now.Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour)))),
			UpdatedAt:   now.Add(-time.Duration(rng.Int63n(int64(7 * 24 * time.Hour)))),
			Status:      core.StatusActive,
		}
		// 90% active content
		if rng.Float64() <= 0.1 {
			item.Status = core.StatusInactive
		}
		items = append(items, item)
	}
	return items
}
