package service_test

import (
	"errors"
	"sort"
	"testing"
	"time"

	appErrors "github.com/unclebandit/campaigns-api/internal/errors"
	"github.com/unclebandit/campaigns-api/internal/model"
	"github.com/unclebandit/campaigns-api/internal/service"
)

// MockCampaignRepo keeps campaigns in memory and hands out copies, the
// way a real database round trip would.
type MockCampaignRepo struct {
	campaigns map[int]model.Campaign
	nextID    int
}

func NewMockCampaignRepo() *MockCampaignRepo {
	return &MockCampaignRepo{
		campaigns: map[int]model.Campaign{},
		nextID:    1,
	}
}

func (m *MockCampaignRepo) Create(c *model.Campaign) error {
	c.ID = m.nextID
	m.nextID++
	m.campaigns[c.ID] = *c
	return nil
}

func (m *MockCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	found := c
	return &found, nil
}

func (m *MockCampaignRepo) Update(c *model.Campaign) error {
	if _, ok := m.campaigns[c.ID]; !ok {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	m.campaigns[c.ID] = *c
	return nil
}

func (m *MockCampaignRepo) Delete(id int) error {
	if _, ok := m.campaigns[id]; !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	delete(m.campaigns, id)
	return nil
}

func (m *MockCampaignRepo) ListCampaigns() ([]*model.Campaign, error) {
	ids := []int{}
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := []*model.Campaign{}
	for _, id := range ids {
		c := m.campaigns[id]
		out = append(out, &c)
	}
	return out, nil
}

func (m *MockCampaignRepo) Count() (int, error) {
	return len(m.campaigns), nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// --- Tests ---

func TestCreateCampaignSetsCreatedAt(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: NewMockCampaignRepo()}

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	before := time.Now().UTC()

	c, err := svc.CreateCampaign("Launch", &due)
	if err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	if c.ID == 0 {
		t.Error("expected assigned ID")
	}
	if c.Name != "Launch" {
		t.Errorf("expected name Launch, got %q", c.Name)
	}
	if c.DueDate == nil || !c.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, c.DueDate)
	}
	if c.CreatedAt.Before(before) || c.CreatedAt.After(time.Now().UTC()) {
		t.Errorf("created_at %v not near call time", c.CreatedAt)
	}
}

func TestUpdateCampaignNameOnly(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: NewMockCampaignRepo()}

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateCampaign("Original", &due)
	if err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	updated, err := svc.UpdateCampaign(created.ID, strPtr("Renamed"), nil)
	if err != nil {
		t.Fatalf("UpdateCampaign failed: %v", err)
	}

	if updated.Name != "Renamed" {
		t.Errorf("expected Renamed, got %q", updated.Name)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Errorf("due date should be unchanged, got %v", updated.DueDate)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at should be unchanged, got %v", updated.CreatedAt)
	}
}

func TestUpdateCampaignDueDateOnly(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: NewMockCampaignRepo()}

	created, err := svc.CreateCampaign("Original", nil)
	if err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	due := time.Date(2027, 1, 15, 12, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateCampaign(created.ID, nil, timePtr(due))
	if err != nil {
		t.Fatalf("UpdateCampaign failed: %v", err)
	}

	if updated.Name != "Original" {
		t.Errorf("name should be unchanged, got %q", updated.Name)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, updated.DueDate)
	}
}

func TestNotFoundOnUnknownID(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: NewMockCampaignRepo()}

	if _, err := svc.GetCampaign(999999); !isNotFound(err) {
		t.Errorf("GetCampaign: expected not-found, got %v", err)
	}
	if _, err := svc.UpdateCampaign(999999, strPtr("x"), nil); !isNotFound(err) {
		t.Errorf("UpdateCampaign: expected not-found, got %v", err)
	}
	if err := svc.DeleteCampaign(999999); !isNotFound(err) {
		t.Errorf("DeleteCampaign: expected not-found, got %v", err)
	}
}

func TestDeleteCampaignTwice(t *testing.T) {
	svc := &service.CampaignService{CampaignRepo: NewMockCampaignRepo()}

	c, err := svc.CreateCampaign("Short lived", nil)
	if err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	if err := svc.DeleteCampaign(c.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteCampaign(c.ID); !isNotFound(err) {
		t.Errorf("second delete: expected not-found, got %v", err)
	}
	if _, err := svc.GetCampaign(c.ID); !isNotFound(err) {
		t.Errorf("get after delete: expected not-found, got %v", err)
	}
}

func TestSeedSampleDataIdempotent(t *testing.T) {
	repo := NewMockCampaignRepo()
	svc := &service.CampaignService{CampaignRepo: repo}

	if err := svc.SeedSampleData(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	campaigns, err := svc.ListCampaigns()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(campaigns) != 2 {
		t.Fatalf("expected 2 seeded campaigns, got %d", len(campaigns))
	}
	if campaigns[0].Name != "Campaign tesla" || campaigns[1].Name != "Campaign apple" {
		t.Errorf("unexpected seed names: %q, %q", campaigns[0].Name, campaigns[1].Name)
	}

	// Second boot: nothing re-inserted
	if err := svc.SeedSampleData(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if n, _ := repo.Count(); n != 2 {
		t.Errorf("expected 2 campaigns after reseed, got %d", n)
	}
}

func TestSeedSkippedWhenDataExists(t *testing.T) {
	repo := NewMockCampaignRepo()
	svc := &service.CampaignService{CampaignRepo: repo}

	if _, err := svc.CreateCampaign("Existing", nil); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	if err := svc.SeedSampleData(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if n, _ := repo.Count(); n != 1 {
		t.Errorf("seed should be skipped on non-empty table, got %d campaigns", n)
	}
}

func isNotFound(err error) bool {
	var notFound *appErrors.ErrCampaignNotFound
	return errors.As(err, &notFound)
}
