package pgstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/catalog"
)

func (s *PgStorage) CreateProgram(ctx context.Context, p *catalog.Program) (*catalog.Program, error) {
	stored := *p

	q := sqlf.InsertInto("programs").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("age_group", p.AgeGroup).
		Set("level", p.Level).
		Set("price", p.Price).
		Set("duration", p.Duration).
		Set("capacity", p.Capacity).
		Set("status", p.Status).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func programQuery(p *catalog.Program) *sqlf.Stmt {
	return sqlf.From("programs").
		Select("id").To(&p.ID).
		Select("name").To(&p.Name).
		Select("description").To(&p.Description).
		Select("age_group").To(&p.AgeGroup).
		Select("level").To(&p.Level).
		Select("price").To(&p.Price).
		Select("duration").To(&p.Duration).
		Select("capacity").To(&p.Capacity).
		Select("status").To(&p.Status)
}

func (s *PgStorage) GetProgramByID(ctx context.Context, id int) (*catalog.Program, error) {
	var p catalog.Program

	q := programQuery(&p).Where("id = ?", id)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrProgramNotFound
		}
		return nil, storage.InternalError(err)
	}
	return &p, nil
}

func (s *PgStorage) ListPrograms(ctx context.Context) ([]*catalog.Program, error) {
	var tmp catalog.Program
	programs := make([]*catalog.Program, 0)

	q := programQuery(&tmp).OrderBy("id")

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		p := tmp
		programs = append(programs, &p)
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return programs, nil
}

func (s *PgStorage) CreateClass(ctx context.Context, c *catalog.Class) (*catalog.Class, error) {
	stored := *c

	q := sqlf.InsertInto("classes").
		Set("program_id", c.ProgramID).
		Set("coach_id", c.CoachID).
		Set("day_of_week", c.DayOfWeek).
		Set("start_time", c.StartTime).
		Set("end_time", c.EndTime).
		Set("capacity", c.Capacity).
		Set("current_enrollment", c.CurrentEnrollment).
		Set("status", c.Status).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func classQuery(c *catalog.Class) *sqlf.Stmt {
	return sqlf.From("classes").
		Select("id").To(&c.ID).
		Select("program_id").To(&c.ProgramID).
		Select("coach_id").To(&c.CoachID).
		Select("day_of_week").To(&c.DayOfWeek).
		Select("start_time").To(&c.StartTime).
		Select("end_time").To(&c.EndTime).
		Select("capacity").To(&c.Capacity).
		Select("current_enrollment").To(&c.CurrentEnrollment).
		Select("status").To(&c.Status)
}

func (s *PgStorage) GetClassByID(ctx context.Context, id int) (*catalog.Class, error) {
	var c catalog.Class

	q := classQuery(&c).Where("id = ?", id)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrClassNotFound
		}
		return nil, storage.InternalError(err)
	}
	return &c, nil
}

func (s *PgStorage) listClasses(ctx context.Context, q *sqlf.Stmt, tmp *catalog.Class) ([]*catalog.Class, error) {
	classes := make([]*catalog.Class, 0)

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		c := *tmp
		classes = append(classes, &c)
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return classes, nil
}

func (s *PgStorage) ListClasses(ctx context.Context) ([]*catalog.Class, error) {
	var tmp catalog.Class
	return s.listClasses(ctx, classQuery(&tmp).OrderBy("id"), &tmp)
}

func (s *PgStorage) ListClassesByCoach(ctx context.Context, coachID int) ([]*catalog.Class, error) {
	var tmp catalog.Class
	return s.listClasses(ctx, classQuery(&tmp).Where("coach_id = ?", coachID).OrderBy("id"), &tmp)
}
