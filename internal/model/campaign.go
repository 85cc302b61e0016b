// internal/model/campaign.go
package model

import "time"

type Campaign struct {
    ID        int        `db:"id" json:"id"`
    Name      string     `db:"name" json:"name"`
    DueDate   *time.Time `db:"due_date" json:"due_date"`
    CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
