package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	s.Load([]models.Lead{{ID: uuid.New(), Name: "Maya"}}, nil, nil, nil, nil, nil)

	snap := s.Leads()
	require.Len(t, snap, 1)
	snap[0].Name = "mutated"

	again := s.Leads()
	assert.Equal(t, "Maya", again[0].Name, "caller mutation must not reach the store")
}

func TestAppendActivityLogIsAppendOnly(t *testing.T) {
	s := NewStore()
	first := models.EntityActivityLog{ID: uuid.New(), Timestamp: time.Now(), Description: "first"}
	s.AppendActivityLog(first)
	s.AppendActivityLog(models.EntityActivityLog{ID: uuid.New(), Timestamp: time.Now(), Description: "second"})

	logs := s.ActivityLogs()
	require.Len(t, logs, 2)
	assert.Equal(t, "first", logs[0].Description)
	assert.Equal(t, "second", logs[1].Description)
}

func TestSeedCoversAllStatusesAndStages(t *testing.T) {
	s := NewStore()
	Seed(s)

	statuses := map[models.LeadStatus]bool{}
	for _, l := range s.Leads() {
		statuses[l.Status] = true
	}
	for _, st := range models.LeadStatusOrder {
		assert.True(t, statuses[st], "seed missing lead status %q", st)
	}

	stages := map[models.DealStage]bool{}
	for _, d := range s.Deals() {
		stages[d.Stage] = true
	}
	for _, stage := range models.DealStageOrder {
		assert.True(t, stages[stage], "seed missing deal stage %q", stage)
	}

	var unsourced bool
	for _, l := range s.Leads() {
		if l.Source == "" {
			unsourced = true
		}
	}
	assert.True(t, unsourced, "seed needs a lead without a source")
	assert.NotEmpty(t, s.ActivityLogs())
	assert.NotEmpty(t, s.Tasks())
	assert.NotEmpty(t, s.Customers())
	assert.NotEmpty(t, s.Products())
}
