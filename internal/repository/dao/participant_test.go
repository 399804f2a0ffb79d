package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantDAO_SaveAndFindByID(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewParticipantDAO(db)

	saved, err := d.Save(ctx, Participant{Nom: "Tounsi", Prenom: "Ahmed", Tache: "ORGANISATEUR"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	found, err := d.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tounsi", found.Nom)
	assert.Equal(t, "Ahmed", found.Prenom)
	assert.Empty(t, found.Events)

	found.Tache = "VISITEUR"
	_, err = d.Save(ctx, found)
	require.NoError(t, err)

	updated, err := d.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "VISITEUR", updated.Tache)
}

func TestParticipantDAO_FindByID_NotFound(t *testing.T) {
	db := setupDB(t)

	_, err := NewParticipantDAO(db).FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestParticipantDAO_Save_KeepsCreatedAt(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewParticipantDAO(db)

	saved, err := d.Save(ctx, Participant{Nom: "Gharbi", Prenom: "Mouna", Tache: "INTERVENANT"})
	require.NoError(t, err)

	created, err := d.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.False(t, created.CreatedAt.IsZero())

	_, err = d.Save(ctx, Participant{ID: saved.ID, Nom: "Gharbi", Prenom: "Mouna", Tache: "VISITEUR"})
	require.NoError(t, err)

	updated, err := d.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "VISITEUR", updated.Tache)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}
