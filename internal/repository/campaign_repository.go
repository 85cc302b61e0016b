package repository

import (
    "database/sql"

    appErrors "github.com/unclebandit/campaigns-api/internal/errors"
    "github.com/unclebandit/campaigns-api/internal/model"
)

type CampaignRepositoryInterface interface {
    ListCampaigns() ([]*model.Campaign, error)
    GetByID(id int) (*model.Campaign, error)
    Create(c *model.Campaign) error
    Update(c *model.Campaign) error
    Delete(id int) error
    Count() (int, error)
}

type CampaignRepository struct {
    DB *sql.DB
}

// ====================== Campaign CRUD ======================

func (r *CampaignRepository) Create(c *model.Campaign) error {
    query := `
        INSERT INTO campaigns (name, due_date, created_at)
        VALUES (?, ?, ?)
    `
    res, err := r.DB.Exec(query, c.Name, c.DueDate, c.CreatedAt)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    c.ID = int(id)
    return nil
}

// Update persists name and due_date. created_at is never written here.
func (r *CampaignRepository) Update(c *model.Campaign) error {
    query := `UPDATE campaigns SET name=?, due_date=? WHERE id=?`
    res, err := r.DB.Exec(query, c.Name, c.DueDate, c.ID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return appErrors.NewCampaignNotFound(c.ID)
    }
    return nil
}

func (r *CampaignRepository) Delete(id int) error {
    res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return appErrors.NewCampaignNotFound(id)
    }
    return nil
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
    query := `SELECT id, name, due_date, created_at FROM campaigns WHERE id=?`
    var c model.Campaign
    err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.DueDate, &c.CreatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, err
    }
    return &c, nil
}

// ListCampaigns returns every row in insertion order.
func (r *CampaignRepository) ListCampaigns() ([]*model.Campaign, error) {
    campaigns := []*model.Campaign{}
    query := `SELECT id, name, due_date, created_at FROM campaigns ORDER BY id`

    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    for rows.Next() {
        c := &model.Campaign{}
        if err := rows.Scan(&c.ID, &c.Name, &c.DueDate, &c.CreatedAt); err != nil {
            return nil, err
        }
        campaigns = append(campaigns, c)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }

    return campaigns, nil
}

func (r *CampaignRepository) Count() (int, error) {
    var total int
    err := r.DB.QueryRow(`SELECT COUNT(*) FROM campaigns`).Scan(&total)
    return total, err
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
