package database

import (
	"context"
	"log"
	"time"

	"github.com/univault/univault-api/model"
)

// SeedInstitutions is the initial Malaysian institution catalogue.
func SeedInstitutions() []model.Institution {
	return []model.Institution{
		{
			ID:   "inst_1",
			Name: "UniKL MIIT",
			Location: model.Location{
				Lat:     3.1579,
				Lng:     101.7116,
				Address: "1016, Jalan Sultan Ismail, 50250 Kuala Lumpur",
			},
			LogoURL:       "https://upload.wikimedia.org/wikipedia/en/thumb/8/8e/UniKL_Logo.svg/1200px-UniKL_Logo.svg.png",
			TotalUploads:  120,
			AverageRating: 4.5,
			Country:       "Malaysia",
		},
		{
			ID:   "inst_2",
			Name: "Universiti Malaya (UM)",
			Location: model.Location{
				Lat:     3.1209,
				Lng:     101.6538,
				Address: "Jalan Universiti, 50603 Kuala Lumpur",
			},
			LogoURL:       "https://upload.wikimedia.org/wikipedia/en/thumb/4/48/Universiti_Malaya_coat_of_arms.svg/1200px-Universiti_Malaya_coat_of_arms.svg.png",
			TotalUploads:  350,
			AverageRating: 4.8,
			Country:       "Malaysia",
		},
		{
			ID:   "inst_3",
			Name: "Universiti Teknologi Malaysia (UTM)",
			Location: model.Location{
				Lat:     1.56,
				Lng:     103.63,
				Address: "Jalan Sultan Yahya Petra, 54100 Kuala Lumpur",
			},
			LogoURL:       "https://upload.wikimedia.org/wikipedia/en/thumb/e/e8/Universiti_Teknologi_Malaysia_Logo.svg/1200px-Universiti_Teknologi_Malaysia_Logo.svg.png",
			TotalUploads:  200,
			AverageRating: 4.6,
			Country:       "Malaysia",
		},
	}
}

// SeedResearch is the initial research catalogue.
func SeedResearch() []model.Research {
	now := time.Now().UTC()
	return []model.Research{
		{
			ID:            "res_1",
			OwnerID:       "user_1",
			Title:         "AI in Healthcare",
			Grade:         "A",
			Rating:        3,
			Price:         0,
			InstitutionID: "inst_1",
			Degree:        "Bachelor",
			Course:        "Information Technology",
			SubjectCode:   "BIT3012",
			YearSubmitted: 2024,
			YearPublished: 2024,
			Abstract:      "A study on the impact of AI in modern healthcare systems.",
			Keywords:      []string{"AI", "Healthcare", "Machine Learning"},
			Downloads:     10,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

// RunSeeds loads the initial catalogue into the given stores. Records that
// already exist are left untouched, so seeding a persistent store twice is
// safe.
func RunSeeds(ctx context.Context, research ResearchStore, institutions InstitutionStore) error {
	seeded := 0
	for _, inst := range SeedInstitutions() {
		if _, err := institutions.Get(ctx, inst.ID); err == nil {
			continue
		}
		if err := institutions.Put(ctx, inst); err != nil {
			return err
		}
		seeded++
	}
	for _, rec := range SeedResearch() {
		if _, err := research.Get(ctx, rec.ID); err == nil {
			continue
		}
		if err := research.Put(ctx, rec); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		log.Printf("Seeded %d catalogue records", seeded)
	}
	return nil
}
