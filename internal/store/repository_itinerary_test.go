package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func newTestItineraryRepo(t *testing.T) (*itineraryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &itineraryRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock
}

func date(s string) models.Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return models.NewDate(t)
}

func sampleItinerary() models.Itinerary {
	return models.Itinerary{
		ID:     7,
		UserID: 42,
		Trip: models.Trip{
			Destination: "Cairo",
			StartDate:   date("2025-08-01"),
			EndDate:     date("2025-08-03"),
			DaysCount:   3,
			Interests:   []string{"food", "history"},
		},
		Days: []models.DayPlan{
			{Day: 1, Activities: []string{"Pyramids"}},
			{Day: 2, Activities: []string{"Museum"}},
			{Day: 3, Activities: []string{"Nile cruise"}},
		},
	}
}

var createdAt = time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)

func itineraryRows() *sqlmock.Rows {
	return sqlmock.NewRows(itineraryColumns)
}

func addSampleRow(rows *sqlmock.Rows, it models.Itinerary) *sqlmock.Rows {
	interests, days, err := encodeItineraryJSON(it)
	if err != nil {
		panic(err)
	}
	return rows.AddRow(it.ID, it.UserID, it.Destination, it.StartDate.String(), it.EndDate.String(),
		it.DaysCount, interests, []byte(days), createdAt)
}

// ─────────────────────────────────────────────────────────────────────────────
// query builders
// ─────────────────────────────────────────────────────────────────────────────

func TestBuildQueries_FilterByOwner(t *testing.T) {
	it := sampleItinerary()

	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "select list",
			build:     func() (string, []any, error) { return buildSelectItinerariesQuery(42) },
			wantQuery: "SELECT id, user_id, destination, start_date, end_date, days_count, interests, generated_itinerary, created_at FROM itineraries WHERE user_id = $1 ORDER BY created_at, id",
			wantArgs:  []any{int64(42)},
		},
		{
			name:      "select one",
			build:     func() (string, []any, error) { return buildSelectItineraryQuery(42, 7) },
			wantQuery: "SELECT id, user_id, destination, start_date, end_date, days_count, interests, generated_itinerary, created_at FROM itineraries WHERE id = $1 AND user_id = $2",
			wantArgs:  []any{int64(7), int64(42)},
		},
		{
			name:      "delete",
			build:     func() (string, []any, error) { return buildDeleteItineraryQuery(42, 7) },
			wantQuery: "DELETE FROM itineraries WHERE id = $1 AND user_id = $2",
			wantArgs:  []any{int64(7), int64(42)},
		},
		{
			name:      "update",
			build:     func() (string, []any, error) { return buildUpdateItineraryQuery(it) },
			wantQuery: "UPDATE itineraries SET destination = $1, start_date = $2, end_date = $3, days_count = $4, interests = $5, generated_itinerary = $6 WHERE id = $7 AND user_id = $8 RETURNING id, user_id, destination, start_date, end_date, days_count, interests, generated_itinerary, created_at",
			wantArgs: []any{
				"Cairo", "2025-08-01", "2025-08-03", 3,
				`["food","history"]`,
				`[{"day":1,"activities":["Pyramids"]},{"day":2,"activities":["Museum"]},{"day":3,"activities":["Nile cruise"]}]`,
				int64(7), int64(42),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildInsertItineraryQuery_NilSlicesBecomeEmptyArrays(t *testing.T) {
	it := sampleItinerary()
	it.Interests = nil
	it.Days = nil

	query, args, err := buildInsertItineraryQuery(it)

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO itineraries (user_id,destination,start_date,end_date,days_count,interests,generated_itinerary) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at", query)
	assert.Equal(t, []any{int64(42), "Cairo", "2025-08-01", "2025-08-03", 3, "[]", "[]"}, args)
}

// ─────────────────────────────────────────────────────────────────────────────
// SaveItinerary
// ─────────────────────────────────────────────────────────────────────────────

func TestSaveItinerary_Success(t *testing.T) {
	// Arrange
	repo, mock := newTestItineraryRepo(t)
	it := sampleItinerary()
	it.ID = 0

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO itineraries")).
		WithArgs(int64(42), "Cairo", "2025-08-01", "2025-08-03", 3, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), createdAt))

	// Act
	saved, err := repo.SaveItinerary(context.Background(), it)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
	assert.Equal(t, it.Days, saved.Days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveItinerary_DBError(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO itineraries")).
		WillReturnError(errors.New("disk full"))

	_, err := repo.SaveItinerary(context.Background(), sampleItinerary())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─────────────────────────────────────────────────────────────────────────────
// GetItineraries
// ─────────────────────────────────────────────────────────────────────────────

func TestGetItineraries_Success(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	first, second := sampleItinerary(), sampleItinerary()
	second.ID = 8

	rows := addSampleRow(addSampleRow(itineraryRows(), first), second)
	mock.ExpectQuery(regexp.QuoteMeta("FROM itineraries WHERE user_id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	got, err := repo.GetItineraries(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, int64(8), got[1].ID)
	assert.Equal(t, "2025-08-01", got[0].StartDate.String())
	assert.Equal(t, []string{"food", "history"}, got[0].Interests)
	assert.Equal(t, first.Days, got[0].Days)
	assert.Equal(t, createdAt, got[0].CreatedAt)
}

func TestGetItineraries_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	mock.ExpectQuery("SELECT").WithArgs(int64(42)).WillReturnRows(itineraryRows())

	got, err := repo.GetItineraries(context.Background(), 42)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetItineraries_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newTestItineraryRepo(t)
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

		_, err := repo.GetItineraries(context.Background(), 42)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock := newTestItineraryRepo(t)
		rows := itineraryRows().AddRow(1, 42, "Cairo", "not-a-date", "2025-08-03", 3, "[]", "[]", createdAt)
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		_, err := repo.GetItineraries(context.Background(), 42)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration", func(t *testing.T) {
		repo, mock := newTestItineraryRepo(t)
		rows := addSampleRow(itineraryRows(), sampleItinerary()).RowError(0, errors.New("broken pipe"))
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		_, err := repo.GetItineraries(context.Background(), 42)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// GetItinerary / UpdateItinerary / DeleteItinerary
// ─────────────────────────────────────────────────────────────────────────────

func TestGetItinerary_Success(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(7), int64(42)).
		WillReturnRows(addSampleRow(itineraryRows(), sampleItinerary()))

	got, err := repo.GetItinerary(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, 3, got.DaysCount)
}

func TestGetItinerary_NotFound(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	// a row of another owner is filtered out by the WHERE clause
	mock.ExpectQuery("SELECT").
		WithArgs(int64(7), int64(1)).
		WillReturnRows(itineraryRows())

	_, err := repo.GetItinerary(context.Background(), 1, 7)

	assert.ErrorIs(t, err, ErrItineraryNotFound)
}

func TestUpdateItinerary_Success(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	it := sampleItinerary()
	it.Destination = "Luxor"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE itineraries SET")).
		WithArgs("Luxor", "2025-08-01", "2025-08-03", 3, sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), int64(42)).
		WillReturnRows(addSampleRow(itineraryRows(), it))

	got, err := repo.UpdateItinerary(context.Background(), it)

	require.NoError(t, err)
	assert.Equal(t, "Luxor", got.Destination)
	assert.Equal(t, createdAt, got.CreatedAt)
}

func TestUpdateItinerary_NotFound(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	mock.ExpectQuery("UPDATE").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateItinerary(context.Background(), sampleItinerary())

	assert.ErrorIs(t, err, ErrItineraryNotFound)
}

func TestDeleteItinerary(t *testing.T) {
	tests := []struct {
		name    string
		result  func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			result: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM itineraries WHERE id = $1 AND user_id = $2")).
					WithArgs(int64(7), int64(42)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			result: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrItineraryNotFound,
		},
		{
			name: "db error",
			result: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE").WillReturnError(errors.New("locked"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestItineraryRepo(t)
			tt.result(mock)

			err := repo.DeleteItinerary(context.Background(), 42, 7)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
