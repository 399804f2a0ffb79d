package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogisticsDAO_Save_AttachesToEvent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	events := NewEventDAO(db)
	e, err := events.Save(ctx, Event{Description: "Workshop", DateDebut: date(2024, 9, 1), DateFin: date(2024, 9, 1)})
	require.NoError(t, err)

	d := NewLogisticsDAO(db)
	saved, err := d.Save(ctx, Logistics{Description: "Projector", Reserve: true, PrixUnit: 30, Quantite: 2, EventID: &e.ID})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	_, err = d.Save(ctx, Logistics{Description: "Unattached", PrixUnit: 1, Quantite: 1})
	require.NoError(t, err)

	found, err := events.FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, found.Logistics, 1)
	assert.Equal(t, saved.ID, found.Logistics[0].ID)
	assert.True(t, found.Logistics[0].Reserve)
}
