package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCardOwner(t *testing.T, repo *Repository) uint {
	t.Helper()
	id, err := repo.Register("owner", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)
	return id
}

func TestAddAndFindCard(t *testing.T) {
	repo := newTestRepository(t)
	uid := seedCardOwner(t, repo)

	id, err := repo.AddCard(uid, "salary", "0012345678901234", "27/01", 600000, "1234")
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	card, err := repo.FindCard(id)
	require.NoError(t, err)
	assert.Equal(t, uid, card.UserID)
	assert.Equal(t, "salary", card.Name)
	// Leading zeros survive the TEXT column.
	assert.Equal(t, "0012345678901234", card.Number)
	assert.Equal(t, "27/01", card.ExpireDate)
	assert.Equal(t, 600000, card.Balance)
	assert.Equal(t, "1234", card.CVV)

	_, err = repo.FindCard(5)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestDeleteCardCompaction(t *testing.T) {
	repo := newTestRepository(t)
	uid := seedCardOwner(t, repo)

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.AddCard(uid, name, "1234567812345678", "27/01", 600000, "1234")
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteCard(2))

	cards, err := repo.ListCards(uid)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, uint(1), cards[0].ID)
	assert.Equal(t, "first", cards[0].Name)
	assert.Equal(t, uint(2), cards[1].ID)
	assert.Equal(t, "third", cards[1].Name)

	// The next insert continues densely from N.
	id, err := repo.AddCard(uid, "fourth", "8765432187654321", "28/12", 700000, "4321")
	require.NoError(t, err)
	assert.Equal(t, uint(3), id)
}

func TestDeleteFirstCardRenumbersAll(t *testing.T) {
	repo := newTestRepository(t)
	uid := seedCardOwner(t, repo)

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.AddCard(uid, name, "1234567812345678", "27/01", 600000, "1234")
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteCard(1))

	cards, err := repo.ListCards(uid)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, []string{"b", "c"}, []string{cards[0].Name, cards[1].Name})
	assert.Equal(t, uint(1), cards[0].ID)
	assert.Equal(t, uint(2), cards[1].ID)
}

func TestDeleteCardMissing(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.DeleteCard(3)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestListCardsUnscoped(t *testing.T) {
	repo := newTestRepository(t)

	u1, err := repo.Register("one", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)
	u2, err := repo.Register("two", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)

	_, err = repo.AddCard(u1, "mine", "1111222233334444", "27/01", 600000, "1111")
	require.NoError(t, err)
	_, err = repo.AddCard(u2, "theirs", "5555666677778888", "27/01", 600000, "2222")
	require.NoError(t, err)

	// The listing deliberately ignores the filter argument.
	cards, err := repo.ListCards(u1)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestUpdateCardPartial(t *testing.T) {
	repo := newTestRepository(t)
	uid := seedCardOwner(t, repo)

	id, err := repo.AddCard(uid, "old name", "1234567812345678", "27/01", 600000, "1234")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateCard("", "8765432187654321", id))

	card, err := repo.FindCard(id)
	require.NoError(t, err)
	assert.Equal(t, "old name", card.Name)
	assert.Equal(t, "8765432187654321", card.Number)

	require.NoError(t, repo.UpdateCard("new name", "", id))

	card, err = repo.FindCard(id)
	require.NoError(t, err)
	assert.Equal(t, "new name", card.Name)
	assert.Equal(t, "8765432187654321", card.Number)
}

func TestUpdateCardMissing(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.UpdateCard("name", "", 9)
	assert.ErrorIs(t, err, ErrCardNotFound)
}
