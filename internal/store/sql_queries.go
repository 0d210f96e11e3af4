package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-trip-planner/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

// psql renders $N placeholders, which both pgx and sqlite accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var itineraryColumns = []string{
	"id",
	"user_id",
	"destination",
	"start_date",
	"end_date",
	"days_count",
	"interests",
	"generated_itinerary",
	"created_at",
}

var itinerariesTable = models.Itinerary{}.TableName()

func buildInsertItineraryQuery(it models.Itinerary) (string, []any, error) {
	interests, days, err := encodeItineraryJSON(it)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.Insert(itinerariesTable).
		Columns("user_id", "destination", "start_date", "end_date", "days_count", "interests", "generated_itinerary").
		Values(it.UserID, it.Destination, it.StartDate.String(), it.EndDate.String(), it.DaysCount, interests, days).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectItinerariesQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Select(itineraryColumns...).
		From(itinerariesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectItineraryQuery(userID, id int64) (string, []any, error) {
	query, args, err := psql.Select(itineraryColumns...).
		From(itinerariesTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateItineraryQuery replaces every mutable column. id, user_id and
// created_at are preserved.
func buildUpdateItineraryQuery(it models.Itinerary) (string, []any, error) {
	interests, days, err := encodeItineraryJSON(it)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.Update(itinerariesTable).
		Set("destination", it.Destination).
		Set("start_date", it.StartDate.String()).
		Set("end_date", it.EndDate.String()).
		Set("days_count", it.DaysCount).
		Set("interests", interests).
		Set("generated_itinerary", days).
		Where(sq.Eq{"id": it.ID}).
		Where(sq.Eq{"user_id": it.UserID}).
		Suffix("RETURNING " + strings.Join(itineraryColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteItineraryQuery(userID, id int64) (string, []any, error) {
	query, args, err := psql.Delete(itinerariesTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func encodeItineraryJSON(it models.Itinerary) (interests, days string, err error) {
	if interests, err = encodeJSONColumn(it.Interests); err != nil {
		return "", "", err
	}
	if days, err = encodeJSONColumn(it.Days); err != nil {
		return "", "", err
	}
	return interests, days, nil
}
