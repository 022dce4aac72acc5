package pgstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
)

func (s *PgStorage) CreateMember(ctx context.Context, m *member.Member) (*member.Member, error) {
	stored := *m

	q := sqlf.InsertInto("members").
		Set("user_id", m.UserID).
		Set("full_name", m.FullName).
		Set("phone", m.Phone).
		Set("age", m.Age).
		Set("swimming_level", m.SwimmingLevel).
		Set("medical_info", m.MedicalInfo).
		Set("emergency_contact", m.EmergencyContact).
		Set("program", m.Program).
		Set("registration_date", m.RegistrationDate).
		Set("status", m.Status).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func memberQuery(m *member.Member) *sqlf.Stmt {
	return sqlf.From("members").
		Select("id").To(&m.ID).
		Select("user_id").To(&m.UserID).
		Select("full_name").To(&m.FullName).
		Select("phone").To(&m.Phone).
		Select("age").To(&m.Age).
		Select("swimming_level").To(&m.SwimmingLevel).
		Select("medical_info").To(&m.MedicalInfo).
		Select("emergency_contact").To(&m.EmergencyContact).
		Select("program").To(&m.Program).
		Select("registration_date").To(&m.RegistrationDate).
		Select("status").To(&m.Status)
}

func (s *PgStorage) getMember(ctx context.Context, whereClause string, whereArgs ...any) (*member.Member, error) {
	var m member.Member

	q := memberQuery(&m).Where(whereClause, whereArgs...).OrderBy("id").Limit(1)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, member.ErrMemberNotFound
		}
		return nil, storage.InternalError(err)
	}
	return &m, nil
}

func (s *PgStorage) GetMemberByUserID(ctx context.Context, userID int) (*member.Member, error) {
	return s.getMember(ctx, "user_id = ?", userID)
}

func (s *PgStorage) GetMemberByID(ctx context.Context, id int) (*member.Member, error) {
	return s.getMember(ctx, "id = ?", id)
}

func (s *PgStorage) ListMembers(ctx context.Context) ([]*member.Member, error) {
	var tmp member.Member
	members := make([]*member.Member, 0)

	q := memberQuery(&tmp).OrderBy("id")

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		m := tmp
		members = append(members, &m)
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return members, nil
}

func (s *PgStorage) UpdateMember(ctx context.Context, id int, upd member.Update) (*member.Member, error) {
	cur, err := s.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := upd.Apply(*cur)

	log, _ := diff.Diff(*cur, merged)
	if len(log) == 0 {
		return &merged, nil
	}

	q := makeUpdateQuery(sqlf.Update("members").Where("id = ?", id), log)
	res, err := q.Exec(ctx, s.db)
	if err := assertUpdated(res, err, member.ErrMemberNotFound); err != nil {
		return nil, err
	}
	return &merged, nil
}
