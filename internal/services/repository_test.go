package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCars(t *testing.T, s *CarService) {
	t.Helper()
	ctx := context.Background()
	for _, c := range []models.Car{
		{Make: "Audi", Model: "A6", Price: 50000, Year: 2019},
		{Make: "BMW", Model: "5", Price: 55000, Year: 2020},
		{Make: "Toyota", Model: "Camry", Price: 45000, Year: 2019},
		{Make: "Toyota", Model: "Supra", Price: 35000, Year: 2018},
	} {
		car := c
		require.NoError(t, s.Create(ctx, &car))
		require.NotZero(t, car.ID)
	}
}

func TestCarFilters(t *testing.T) {
	s := NewCarService(testutil.OpenDB(t))
	seedCars(t, s)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter CarFilter
		makes  []string
	}{
		{name: "no filter", filter: CarFilter{}, makes: []string{"Audi", "BMW", "Toyota", "Toyota"}},
		{name: "or within field", filter: CarFilter{Years: []uint{2019, 2018}}, makes: []string{"Audi", "Toyota", "Toyota"}},
		{name: "and across fields", filter: CarFilter{Years: []uint{2019}, Makes: []string{"Toyota"}}, makes: []string{"Toyota"}},
		{name: "model", filter: CarFilter{Models: []string{"Supra", "5"}}, makes: []string{"BMW", "Toyota"}},
		{name: "no match", filter: CarFilter{Makes: []string{"Lada"}}, makes: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cars, err := s.List(ctx, tt.filter)
			require.NoError(t, err)

			makes := make([]string, 0, len(cars))
			for _, c := range cars {
				makes = append(makes, c.Make)
			}
			assert.Equal(t, tt.makes, makes)
		})
	}
}

func TestCacheKeyIsCanonical(t *testing.T) {
	a := CarFilter{Years: []uint{2019, 2018, 2019}, Makes: []string{"Toyota"}}
	b := CarFilter{Years: []uint{2018, 2019}, Makes: []string{"Toyota", "Toyota"}}
	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.Equal(t, "years=2018,2019&makes=Toyota", a.CacheKey())
	assert.Equal(t, "", CarFilter{}.CacheKey())
	assert.NotEqual(t, CarFilter{Makes: []string{"a"}}.CacheKey(), CarFilter{Models: []string{"a"}}.CacheKey())

	assert.Equal(t, "lastNames=Doe", UserFilter{LastNames: []string{"Doe"}}.CacheKey())
	assert.Equal(t, "singers=Adele&names=Hello", SongFilter{Names: []string{"Hello"}, Singers: []string{"Adele"}}.CacheKey())
	assert.Equal(t, "authorNames=Ann", NewsFeedFilter{AuthorNames: []string{"Ann"}}.CacheKey())
}

func TestGetAndDelete(t *testing.T) {
	s := NewCarService(testutil.OpenDB(t))
	seedCars(t, s)
	ctx := context.Background()

	car, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Audi", car.Make)

	require.NoError(t, s.Delete(ctx, 1))

	_, err = s.Get(ctx, 1)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(s.Delete(ctx, 1), &nf))
	assert.Equal(t, "Car", nf.Entity)
	assert.EqualValues(t, 1, nf.ID)

	cars, err := s.List(ctx, CarFilter{})
	require.NoError(t, err)
	assert.Len(t, cars, 3)
}

func TestFindByIDs(t *testing.T) {
	s := NewCarService(testutil.OpenDB(t))
	seedCars(t, s)
	ctx := context.Background()

	all, err := s.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	some, err := s.FindByIDs(ctx, []uint{4, 2})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.EqualValues(t, 2, some[0].ID)
	assert.EqualValues(t, 4, some[1].ID)
}

func TestUpdateMergesMutableFieldsOnly(t *testing.T) {
	db := testutil.OpenDB(t)
	s := NewNewsFeedService(db)
	ctx := context.Background()

	item := models.NewsFeedItem{Title: "Hello", Body: "first", AuthorName: "Ann"}
	require.NoError(t, s.Create(ctx, &item))
	created := item.DateCreated

	err := s.Update(ctx, item.ID, &models.NewsFeedItem{
		Title:         "Updated",
		Body:          "second",
		AuthorName:    "Mallory",
		AllowComments: true,
	})
	require.NoError(t, err)

	stored, err := s.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", stored.Title)
	assert.Equal(t, "second", stored.Body)
	assert.True(t, stored.AllowComments)
	assert.Equal(t, "Ann", stored.AuthorName)
	assert.WithinDuration(t, created, stored.DateCreated, time.Second)
}

func TestUpdateMissingRecord(t *testing.T) {
	s := NewCarService(testutil.OpenDB(t))
	err := s.Update(context.Background(), 42, &models.Car{Make: "Audi"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBatch(t *testing.T) {
	s := NewCarService(testutil.OpenDB(t))
	ctx := context.Background()

	cars := []models.Car{{Make: "Audi"}, {Make: "BMW"}}
	require.NoError(t, s.CreateBatch(ctx, cars))
	assert.NotZero(t, cars[0].ID)
	assert.NotZero(t, cars[1].ID)

	all, err := s.List(ctx, CarFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.NoError(t, s.CreateBatch(ctx, nil))
}
