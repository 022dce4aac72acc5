package pgstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/coach"
)

// coachRow carries the jsonb-encoded slice columns before decoding.
type coachRow struct {
	coach.Coach
	CertificationsJSON sql.NullString
	SpecialtiesJSON    sql.NullString
}

func (r *coachRow) toDomain() *coach.Coach {
	c := r.Coach
	c.Certifications = decodeStrings(r.CertificationsJSON)
	c.Specialties = decodeStrings(r.SpecialtiesJSON)
	return &c
}

func (s *PgStorage) CreateCoach(ctx context.Context, c *coach.Coach) (*coach.Coach, error) {
	stored := *c

	q := sqlf.InsertInto("coaches").
		Set("user_id", c.UserID).
		Set("full_name", c.FullName).
		Set("phone", c.Phone).
		Set("experience", c.Experience).
		Set("certifications", encodeStrings(c.Certifications)).
		Set("specialties", encodeStrings(c.Specialties)).
		Set("bio", c.Bio).
		Set("image_url", c.ImageURL).
		Set("status", c.Status).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func coachQuery(r *coachRow) *sqlf.Stmt {
	return sqlf.From("coaches").
		Select("id").To(&r.ID).
		Select("user_id").To(&r.UserID).
		Select("full_name").To(&r.FullName).
		Select("phone").To(&r.Phone).
		Select("experience").To(&r.Experience).
		Select("certifications").To(&r.CertificationsJSON).
		Select("specialties").To(&r.SpecialtiesJSON).
		Select("bio").To(&r.Bio).
		Select("image_url").To(&r.ImageURL).
		Select("status").To(&r.Status)
}

func (s *PgStorage) getCoach(ctx context.Context, whereClause string, whereArgs ...any) (*coach.Coach, error) {
	var r coachRow

	q := coachQuery(&r).Where(whereClause, whereArgs...).OrderBy("id").Limit(1)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, coach.ErrCoachNotFound
		}
		return nil, storage.InternalError(err)
	}
	return r.toDomain(), nil
}

func (s *PgStorage) GetCoachByUserID(ctx context.Context, userID int) (*coach.Coach, error) {
	return s.getCoach(ctx, "user_id = ?", userID)
}

func (s *PgStorage) getCoachByID(ctx context.Context, id int) (*coach.Coach, error) {
	return s.getCoach(ctx, "id = ?", id)
}

func (s *PgStorage) ListCoaches(ctx context.Context) ([]*coach.Coach, error) {
	var tmp coachRow
	coaches := make([]*coach.Coach, 0)

	q := coachQuery(&tmp).OrderBy("id")

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		coaches = append(coaches, tmp.toDomain())
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return coaches, nil
}

func (s *PgStorage) UpdateCoach(ctx context.Context, id int, upd coach.Update) (*coach.Coach, error) {
	cur, err := s.getCoachByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := upd.Apply(*cur)

	q := sqlf.Update("coaches").Where("id = ?", id)

	// Slice columns are tagged out of the diff; set them explicitly.
	log, _ := diff.Diff(*cur, merged)
	q = makeUpdateQuery(q, log)
	changed := len(log) != 0
	if upd.Certifications != nil {
		q = q.Set("certifications", encodeStrings(merged.Certifications))
		changed = true
	}
	if upd.Specialties != nil {
		q = q.Set("specialties", encodeStrings(merged.Specialties))
		changed = true
	}

	if !changed {
		return &merged, nil
	}

	res, err := q.Exec(ctx, s.db)
	if err := assertUpdated(res, err, coach.ErrCoachNotFound); err != nil {
		return nil, err
	}
	return &merged, nil
}
