package domain

import (
	"errors"
	"time"
)

// StatusCheck is the legacy health-check entity; not part of the fitness
// domain but kept for uptime probes.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name"`
}

func (c *StatusCheckCreate) Validate() error {
	if c.ClientName == "" {
		return errors.New("client_name is required")
	}
	return nil
}
