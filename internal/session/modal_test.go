package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meufuturo/futuro/internal/model"
)

func TestModal_Transitions(t *testing.T) {
	s := newTestSession(t, &fakeClient{})

	tx1 := model.Transaction{ID: "tx-1", Description: "Internet"}
	tx2 := model.Transaction{ID: "tx-2", Description: "Mercado"}

	assert.Equal(t, ModalNone, s.Modal().Kind)
	assert.Nil(t, s.SelectedTransaction())

	s.OpenDelete(tx2)
	assert.Equal(t, ModalDelete, s.Modal().Kind)
	require.NotNil(t, s.SelectedTransaction())
	assert.Equal(t, "tx-2", s.SelectedTransaction().ID)

	// opening another modal moves straight there with the new payload
	s.OpenEdit(tx1)
	modal := s.Modal()
	assert.Equal(t, ModalEdit, modal.Kind)
	require.NotNil(t, modal.Transaction)
	assert.Equal(t, "tx-1", modal.Transaction.ID)

	// create carries no selection from a prior modal
	s.OpenCreate()
	assert.Equal(t, ModalCreate, s.Modal().Kind)
	assert.Nil(t, s.SelectedTransaction())

	s.OpenDetails(tx2)
	assert.Equal(t, ModalDetails, s.Modal().Kind)

	s.CloseModal()
	assert.Equal(t, ModalNone, s.Modal().Kind)
	assert.Nil(t, s.SelectedTransaction())

	// closing twice stays closed
	s.CloseModal()
	assert.Equal(t, ModalNone, s.Modal().Kind)
}

func TestModal_CommitHookFires(t *testing.T) {
	commits := 0
	s := New(Config{
		Client:   &fakeClient{},
		OnCommit: func() { commits++ },
	})
	t.Cleanup(s.Close)

	s.OpenCreate()
	s.CloseModal()
	assert.Equal(t, 2, commits)
}
