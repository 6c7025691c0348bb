package commerce

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/mock"
)

func TestToggleTwiceLikesThenUnlikes(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockFavoriteStore(ctrl)
	fav := NewFavorites(store, nil)
	ctx := context.Background()

	liked := false
	store.EXPECT().MovieExists(gomock.Any(), int64(5)).Return(true, nil).Times(2)
	store.EXPECT().ToggleLike(gomock.Any(), int64(1), int64(5)).DoAndReturn(
		func(context.Context, int64, int64) (bool, error) {
			liked = !liked
			return liked, nil
		}).Times(2)
	store.EXPECT().LikeExists(gomock.Any(), int64(1), int64(5)).DoAndReturn(
		func(context.Context, int64, int64) (bool, error) { return liked, nil }).Times(2)

	got, err := fav.Toggle(ctx, 1, 5)
	require.NoError(t, err)
	assert.True(t, got)
	exists, err := fav.IsFavorited(ctx, 1, 5)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err = fav.Toggle(ctx, 1, 5)
	require.NoError(t, err)
	assert.False(t, got)
	exists, err = fav.IsFavorited(ctx, 1, 5)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToggleUnknownMovie(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockFavoriteStore(ctrl)
	store.EXPECT().MovieExists(gomock.Any(), int64(404)).Return(false, nil)

	_, err := NewFavorites(store, nil).Toggle(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestToggleStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockFavoriteStore(ctrl)
	store.EXPECT().MovieExists(gomock.Any(), int64(1)).Return(true, nil)
	store.EXPECT().ToggleLike(gomock.Any(), int64(2), int64(1)).Return(false, errors.New("down"))

	_, err := NewFavorites(store, nil).Toggle(context.Background(), 2, 1)
	require.Error(t, err)
}

func TestIsFavoritedAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockFavoriteStore(ctrl)

	liked, err := NewFavorites(store, nil).IsFavorited(context.Background(), 0, 5)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestListFavorites(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockFavoriteStore(ctrl)
	store.EXPECT().LikedMovies(gomock.Any(), int64(1)).Return([]domain.Movie{{ID: 2}, {ID: 1}}, nil)

	movies, err := NewFavorites(store, nil).List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}
