package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Keywords, article and error details are stored as JSONB.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
	id, name, type, country, language,
	message, keywords, article,
	affiliate_campaign_id, tracking_link, article_request_id,
	keywords_submitted, needs_design, status, error_details,
	created_at, queued_at, launched_at, updated_at`

const launchColumns = `
	id, campaign_id, platform, budget, scheduled_start, generate_with_ai,
	ad_copy, media,
	external_campaign_id, external_group_id, external_ad_id,
	status, error, created_at, updated_at`

// CreateCampaign stores a new campaign together with its platform launches
// in a single transaction.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	keywords, article, errDetails, err := marshalCampaignJSON(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err = tx.Exec(ctx, `
		INSERT INTO campaigns (
			id, name, type, country, language,
			message, keywords, article,
			affiliate_campaign_id, tracking_link, article_request_id,
			keywords_submitted, needs_design, status, error_details,
			created_at, queued_at, launched_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		c.ID, c.Name, c.Type, c.Country, c.Language,
		c.Message, keywords, article,
		c.AffiliateCampaignID, c.TrackingLink, c.ArticleRequestID,
		c.KeywordsSubmitted, c.NeedsDesign, c.Status, errDetails,
		c.CreatedAt, c.QueuedAt, c.LaunchedAt, c.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for i := range c.Launches {
		l := &c.Launches[i]
		l.CampaignID = c.ID
		l.CreatedAt = now
		l.UpdatedAt = now
		var media []byte
		media, err = json.Marshal(l.Media)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO platform_launches (
				id, campaign_id, platform, budget, scheduled_start, generate_with_ai,
				ad_copy, media,
				external_campaign_id, external_group_id, external_ad_id,
				status, error, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
			l.ID, l.CampaignID, l.Platform, l.Budget, l.ScheduledStart, l.GenerateWithAI,
			l.AdCopy, media,
			l.ExternalCampaignID, l.ExternalGroupID, l.ExternalAdID,
			l.Status, l.Error, l.CreatedAt, l.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetCampaign returns a campaign with its launches.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	if err = r.loadLaunches(ctx, []*domain.Campaign{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns returns all campaigns, newest first, with launches.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return r.listCampaigns(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
}

// ListQueued returns campaigns in queued status ordered by enqueue time.
func (r *CampaignRepository) ListQueued(ctx context.Context) ([]domain.Campaign, error) {
	return r.listCampaigns(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE status = 'queued' ORDER BY queued_at`)
}

func (r *CampaignRepository) listCampaigns(ctx context.Context, query string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, err
	}
	refs := make([]*domain.Campaign, len(campaigns))
	for i := range campaigns {
		refs[i] = &campaigns[i]
	}
	if err = r.loadLaunches(ctx, refs); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// UpdateStatus persists a status change and stamps the timestamps tied to
// queue entry and activation.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	query := `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`
	switch status {
	case domain.StatusQueued:
		query = `UPDATE campaigns SET status = $1, queued_at = now(), updated_at = now() WHERE id = $2`
	case domain.StatusActive:
		query = `UPDATE campaigns SET status = $1, launched_at = now(), updated_at = now() WHERE id = $2`
	}
	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// SaveContent persists the campaign's copy, keywords, article and affiliate
// identifiers.
func (r *CampaignRepository) SaveContent(ctx context.Context, c *domain.Campaign) error {
	keywords, article, _, err := marshalCampaignJSON(c)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET
			message = $1, keywords = $2, article = $3,
			affiliate_campaign_id = $4, tracking_link = $5, article_request_id = $6,
			keywords_submitted = $7, updated_at = now()
		WHERE id = $8`,
		c.Message, keywords, article,
		c.AffiliateCampaignID, c.TrackingLink, c.ArticleRequestID,
		c.KeywordsSubmitted,
		c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// SaveErrorDetails attaches error details to a campaign; nil clears them.
func (r *CampaignRepository) SaveErrorDetails(ctx context.Context, id uuid.UUID, details *domain.ErrorDetails) error {
	var payload []byte
	if details != nil {
		var err error
		payload, err = json.Marshal(details)
		if err != nil {
			return err
		}
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET error_details = $1, updated_at = now() WHERE id = $2`, payload, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// UpdatePlatformLaunch persists one launch's external identifiers, media,
// status and error.
func (r *CampaignRepository) UpdatePlatformLaunch(ctx context.Context, l *domain.PlatformLaunch) error {
	media, err := json.Marshal(l.Media)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE platform_launches SET
			ad_copy = $1, media = $2,
			external_campaign_id = $3, external_group_id = $4, external_ad_id = $5,
			status = $6, error = $7, updated_at = now()
		WHERE id = $8`,
		l.AdCopy, media,
		l.ExternalCampaignID, l.ExternalGroupID, l.ExternalAdID,
		l.Status, l.Error,
		l.ID,
	)
	return err
}

// loadLaunches attaches platform launches to the given campaigns in one
// query.
func (r *CampaignRepository) loadLaunches(ctx context.Context, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*domain.Campaign, len(campaigns))
	ids := make([]uuid.UUID, 0, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+launchColumns+`
		FROM platform_launches
		WHERE campaign_id = ANY($1)
		ORDER BY created_at, platform`, ids)
	if err != nil {
		return err
	}
	launches, err := pgx.CollectRows(rows, scanLaunch)
	if err != nil {
		return err
	}
	for _, l := range launches {
		if c, ok := byID[l.CampaignID]; ok {
			c.Launches = append(c.Launches, l)
		}
	}
	return nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c          domain.Campaign
		keywords   []byte
		article    []byte
		errDetails []byte
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.Country, &c.Language,
		&c.Message, &keywords, &article,
		&c.AffiliateCampaignID, &c.TrackingLink, &c.ArticleRequestID,
		&c.KeywordsSubmitted, &c.NeedsDesign, &c.Status, &errDetails,
		&c.CreatedAt, &c.QueuedAt, &c.LaunchedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(keywords) > 0 {
		if err = json.Unmarshal(keywords, &c.Keywords); err != nil {
			return nil, err
		}
	}
	if len(article) > 0 {
		if err = json.Unmarshal(article, &c.Article); err != nil {
			return nil, err
		}
	}
	if len(errDetails) > 0 {
		c.Error = &domain.ErrorDetails{}
		if err = json.Unmarshal(errDetails, c.Error); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func scanLaunch(row pgx.CollectableRow) (domain.PlatformLaunch, error) {
	var (
		l     domain.PlatformLaunch
		media []byte
	)
	err := row.Scan(
		&l.ID, &l.CampaignID, &l.Platform, &l.Budget, &l.ScheduledStart, &l.GenerateWithAI,
		&l.AdCopy, &media,
		&l.ExternalCampaignID, &l.ExternalGroupID, &l.ExternalAdID,
		&l.Status, &l.Error, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return domain.PlatformLaunch{}, err
	}
	if len(media) > 0 {
		if err = json.Unmarshal(media, &l.Media); err != nil {
			return domain.PlatformLaunch{}, err
		}
	}
	return l, nil
}

func marshalCampaignJSON(c *domain.Campaign) (keywords, article, errDetails []byte, err error) {
	kw := c.Keywords
	if kw == nil {
		kw = []string{}
	}
	if keywords, err = json.Marshal(kw); err != nil {
		return nil, nil, nil, err
	}
	if article, err = json.Marshal(c.Article); err != nil {
		return nil, nil, nil, err
	}
	if c.Error != nil {
		if errDetails, err = json.Marshal(c.Error); err != nil {
			return nil, nil, nil, err
		}
	}
	return keywords, article, errDetails, nil
}
