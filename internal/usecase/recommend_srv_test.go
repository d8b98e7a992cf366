package usecase

import (
	"context"
	"testing"

	"steam-insights/internal/data/entity"
	"steam-insights/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendCorpus() []entity.GameRecord {
	return []entity.GameRecord{
		{ItemID: 10, AppName: "Half-Life", CombinedFeatures: "action fps shooter singleplayer scifi"},
		{ItemID: 20, AppName: "Counter-Strike", CombinedFeatures: "action fps shooter multiplayer competitive"},
		{ItemID: 30, AppName: "Stardew Valley", CombinedFeatures: "farming simulation relaxing pixel indie"},
		{ItemID: 40, AppName: "Portal", CombinedFeatures: "puzzle singleplayer scifi first person"},
		{ItemID: 50, AppName: "Doom", CombinedFeatures: "action fps shooter demons fast"},
		{ItemID: 60, AppName: "Factorio", CombinedFeatures: "automation factory simulation indie"},
		{ItemID: 70, AppName: "Quake", CombinedFeatures: "action fps shooter multiplayer fast"},
	}
}

func TestSimilarGames(t *testing.T) {
	repo := newTestRepository()
	repo.Game = &fakeGameRepo{rows: recommendCorpus()}
	svc := NewRecommendService(repo, testLogger())

	result, err := svc.SimilarGames(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.ItemID)
	assert.Equal(t, "Half-Life", result.AppName)
	require.Len(t, result.Recommendations, 5)

	for i, rec := range result.Recommendations {
		assert.Equal(t, i+1, rec.Rank)
		assert.NotEqual(t, "Half-Life", rec.AppName, "query title must not recommend itself")
	}

	// The other shooters share most terms with the query
	names := make([]string, 0, 5)
	for _, rec := range result.Recommendations {
		names = append(names, rec.AppName)
	}
	assert.Contains(t, names[:3], "Counter-Strike")
	assert.Contains(t, names[:3], "Doom")
	assert.Contains(t, names[:3], "Quake")
}

func TestSimilarGamesDeterministic(t *testing.T) {
	repo := newTestRepository()
	repo.Game = &fakeGameRepo{rows: recommendCorpus()}
	svc := NewRecommendService(repo, testLogger())

	first, err := svc.SimilarGames(context.Background(), 20)
	require.NoError(t, err)

	for run := 0; run < 5; run++ {
		again, err := svc.SimilarGames(context.Background(), 20)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSimilarGamesFewerTitlesThanRanks(t *testing.T) {
	repo := newTestRepository()
	repo.Game = &fakeGameRepo{rows: []entity.GameRecord{
		{ItemID: 1, AppName: "A", CombinedFeatures: "action fps"},
		{ItemID: 2, AppName: "B", CombinedFeatures: "action rpg"},
		{ItemID: 3, AppName: "C", CombinedFeatures: "puzzle casual"},
	}}
	svc := NewRecommendService(repo, testLogger())

	result, err := svc.SimilarGames(context.Background(), 1)
	require.NoError(t, err)

	// Corpus minus the query has 2 titles, so only 2 ranks come back
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, 1, result.Recommendations[0].Rank)
	assert.Equal(t, 2, result.Recommendations[1].Rank)
}

func TestSimilarGamesUnknownItem(t *testing.T) {
	repo := newTestRepository()
	repo.Game = &fakeGameRepo{rows: recommendCorpus()}
	svc := NewRecommendService(repo, testLogger())

	_, err := svc.SimilarGames(context.Background(), 999)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSimilarGamesEmptyFeatureText(t *testing.T) {
	repo := newTestRepository()
	repo.Game = &fakeGameRepo{rows: []entity.GameRecord{
		{ItemID: 1, AppName: "A", CombinedFeatures: "action fps"},
		{ItemID: 2, AppName: "B", CombinedFeatures: ""},
	}}
	svc := NewRecommendService(repo, testLogger())

	_, err := svc.SimilarGames(context.Background(), 2)
	assert.ErrorIs(t, err, utils.ErrComputation)
}

func TestSimilarGamesEmptyCorpus(t *testing.T) {
	repo := newTestRepository()
	svc := NewRecommendService(repo, testLogger())

	_, err := svc.SimilarGames(context.Background(), 1)
	assert.ErrorIs(t, err, utils.ErrComputation)
}
