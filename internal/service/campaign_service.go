// internal/service/campaign_service.go
package service

import (
    "log"
    "time"

    "github.com/unclebandit/campaigns-api/internal/model"
    "github.com/unclebandit/campaigns-api/internal/repository"
)

type CampaignService struct {
    CampaignRepo repository.CampaignRepositoryInterface
}

func (s *CampaignService) CreateCampaign(name string, dueDate *time.Time) (*model.Campaign, error) {
    c := &model.Campaign{
        Name:      name,
        DueDate:   dueDate,
        CreatedAt: time.Now().UTC(),
    }

    if err := s.CampaignRepo.Create(c); err != nil {
        return nil, err
    }

    return c, nil
}

// ListCampaigns fetches all campaigns
func (s *CampaignService) ListCampaigns() ([]model.Campaign, error) {
    ptrs, err := s.CampaignRepo.ListCampaigns()
    if err != nil {
        return nil, err
    }

    campaigns := make([]model.Campaign, len(ptrs))
    for i, c := range ptrs {
        campaigns[i] = *c
    }

    return campaigns, nil
}

// GetCampaign fetches a campaign by ID
func (s *CampaignService) GetCampaign(id int) (*model.Campaign, error) {
    return s.CampaignRepo.GetByID(id)
}

// UpdateCampaign applies a partial update: fields left nil in the
// request keep their stored value. created_at is never touched.
func (s *CampaignService) UpdateCampaign(id int, name *string, dueDate *time.Time) (*model.Campaign, error) {
    campaign, err := s.CampaignRepo.GetByID(id)
    if err != nil {
        return nil, err
    }

    if name != nil {
        campaign.Name = *name
    }
    if dueDate != nil {
        campaign.DueDate = dueDate
    }

    if err := s.CampaignRepo.Update(campaign); err != nil {
        return nil, err
    }

    return campaign, nil
}

func (s *CampaignService) DeleteCampaign(id int) error {
    if _, err := s.CampaignRepo.GetByID(id); err != nil {
        return err
    }
    return s.CampaignRepo.Delete(id)
}

// SeedSampleData inserts two demo campaigns the first time the service
// boots against an empty table. Subsequent boots are a no-op.
func (s *CampaignService) SeedSampleData() error {
    total, err := s.CampaignRepo.Count()
    if err != nil {
        return err
    }
    if total > 0 {
        return nil
    }

    now := time.Now().UTC()
    for _, name := range []string{"Campaign tesla", "Campaign apple"} {
        due := now
        c := &model.Campaign{
            Name:      name,
            DueDate:   &due,
            CreatedAt: now,
        }
        if err := s.CampaignRepo.Create(c); err != nil {
            return err
        }
    }

    log.Println("🌱 Seeded sample campaigns")
    return nil
}
