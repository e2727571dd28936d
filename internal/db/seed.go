package db

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts the demo dataset owned by the given user: a handful of
// campaigns, ad groups under each, and keywords with static performance
// counters. The counters are fixed demo values, not the output of any
// simulation. Ids are generated per run, so seeding is meant for a fresh
// database; re-running it adds another demo set.
func Seed(ctx context.Context, pool *pgxpool.Pool, ownerID uuid.UUID) error {
	r := rand.New(rand.NewSource(42))
	matchTypes := []string{"BROAD", "PHRASE", "EXACT"}
	terms := []string{
		"wireless earbuds", "yoga mat", "coffee grinder", "desk lamp",
		"water bottle", "phone stand", "laptop sleeve", "resistance bands",
	}

	for i := 1; i <= 3; i++ {
		campaignID := uuid.New()
		budget := decimal.NewFromInt(int64(500 * i))
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
			(id, owner_id, name, budget, status, impressions, clicks, conversions, spend, sales, created_at, updated_at)
			VALUES ($1,$2,$3,$4,'ACTIVE',$5,$6,$7,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
			campaignID, ownerID, fmt.Sprintf("Demo Campaign %d", i), budget,
			int64(10000*i), int64(400*i), int64(30*i),
			decimal.NewFromInt(int64(120*i)), decimal.NewFromInt(int64(450*i)))
		if err != nil {
			return err
		}

		for j := 1; j <= 2; j++ {
			adGroupID := uuid.New()
			defaultBid := decimal.NewFromFloat(0.50 + 0.25*float64(j))
			_, err = pool.Exec(ctx, `INSERT INTO ad_groups
				(id, campaign_id, name, default_bid, status, created_at, updated_at)
				VALUES ($1,$2,$3,$4,'ACTIVE',now(),now()) ON CONFLICT DO NOTHING`,
				adGroupID, campaignID, fmt.Sprintf("Ad Group %d-%d", i, j), defaultBid)
			if err != nil {
				return err
			}

			for _, term := range terms[:4] {
				impressions := int64(500 + r.Intn(5000))
				clicks := impressions / int64(20+r.Intn(30))
				conversions := clicks / int64(8+r.Intn(8))
				spend := decimal.NewFromInt(clicks).Mul(defaultBid)
				sales := decimal.NewFromInt(conversions).Mul(decimal.NewFromInt(25))
				_, err = pool.Exec(ctx, `INSERT INTO keywords
					(id, campaign_id, ad_group_id, keyword_text, match_type, bid, is_negative,
					 status, impressions, clicks, conversions, spend, sales, created_at, updated_at)
					VALUES ($1,$2,$3,$4,$5,$6,FALSE,'ACTIVE',$7,$8,$9,$10,$11,now(),now()) ON CONFLICT DO NOTHING`,
					uuid.New(), campaignID, adGroupID, term,
					matchTypes[r.Intn(len(matchTypes))], defaultBid,
					impressions, clicks, conversions, spend, sales)
				if err != nil {
					return err
				}
			}
		}

		// campaign-level negative keywords, no ad group attachment
		for _, term := range []string{"cheap", "free", "used"} {
			_, err = pool.Exec(ctx, `INSERT INTO keywords
				(id, campaign_id, ad_group_id, keyword_text, match_type, bid, is_negative,
				 status, impressions, clicks, conversions, spend, sales, created_at, updated_at)
				VALUES ($1,$2,NULL,$3,'EXACT',0,TRUE,'ACTIVE',0,0,0,0,0,now(),now()) ON CONFLICT DO NOTHING`,
				uuid.New(), campaignID, term)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
