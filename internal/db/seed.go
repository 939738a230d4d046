package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns into the launchpro database: a draft, a pair
// of queued campaigns and one already active, each with platform launches.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	type demo struct {
		name      string
		status    string
		queued    bool
		launched  bool
		platforms []string
	}
	demos := []demo{
		{name: "Keto Gummies US", status: "draft", platforms: []string{"meta"}},
		{name: "VPN Trial DE", status: "queued", queued: true, platforms: []string{"meta", "google"}},
		{name: "Crypto Course BR", status: "queued", queued: true, platforms: []string{"tiktok"}},
		{name: "Fitness App UK", status: "active", queued: true, launched: true, platforms: []string{"meta", "google"}},
	}

	countries := []string{"US", "DE", "BR", "GB"}
	languages := []string{"en", "de", "pt", "en"}

	for i, d := range demos {
		id := uuid.New()
		keywords, _ := json.Marshal([]string{"offer", "deal", "official"})
		article, _ := json.Marshal(map[string]any{})

		var queuedAt, launchedAt any
		if d.queued {
			queuedAt = time.Now().Add(-time.Duration(len(demos)-i) * time.Minute)
		}
		if d.launched {
			launchedAt = time.Now().Add(-30 * time.Minute)
		}

		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, type, country, language, message, keywords, article, status,
     created_at, queued_at, launched_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),$10,$11,now()) ON CONFLICT DO NOTHING`,
			id, d.name, "conversions", countries[i], languages[i],
			fmt.Sprintf("Try %s today", d.name), keywords, article, d.status,
			queuedAt, launchedAt)
		if err != nil {
			return err
		}

		launchStatus := "pending"
		if d.launched {
			launchStatus = "active"
		}
		for _, platform := range d.platforms {
			media, _ := json.Marshal([]any{})
			_, err = db.Exec(ctx, `INSERT INTO platform_launches
    (id, campaign_id, platform, budget, scheduled_start, generate_with_ai,
     media, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now()) ON CONFLICT DO NOTHING`,
				uuid.New(), id, platform, int64(5000), time.Now().AddDate(0, 0, 1),
				true, media, launchStatus)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
