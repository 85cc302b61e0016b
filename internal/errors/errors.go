// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound reports a lookup for a campaign id with no row
// behind it. The HTTP layer unwraps it with errors.As to answer 404.
type ErrCampaignNotFound struct {
    CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
    return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

// NewCampaignNotFound builds the sentinel for the given id.
func NewCampaignNotFound(id int) error {
    return &ErrCampaignNotFound{CampaignID: id}
}
