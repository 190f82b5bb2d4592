package service

import (
	"errors"
	"testing"

	"station_exam_backend/internal/model"
	"station_exam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegradeRequestRequiresLockedScore(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	_, _, _, regrade := newServices(db)
	grantScope(t, db, 1, uintPtr(f.Grader.ID), nil, nil)

	// 还没有成绩行
	_, err := regrade.Request(examinerClaims(1), &RegradeRequestInput{
		ExamSessionID: f.Session.ID,
		StationID:     f.Station.ID,
		RequestedBy:   f.Grader.ID,
	})
	assert.ErrorIs(t, err, util.ErrScoreNotLocked)
}

func TestRegradeDuplicatePendingReturnsExisting(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	_, _, score, regrade := newServices(db)
	grantScope(t, db, 1, uintPtr(f.Grader.ID), nil, nil)

	_, err := score.Submit(examinerClaims(1), submission(f, f.Grader.ID))
	require.NoError(t, err)

	first, err := regrade.Request(examinerClaims(1), &RegradeRequestInput{
		ExamSessionID: f.Session.ID,
		StationID:     f.Station.ID,
		RequestedBy:   f.Grader.ID,
	})
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	second, err := regrade.Request(examinerClaims(1), &RegradeRequestInput{
		ExamSessionID: f.Session.ID,
		StationID:     f.Station.ID,
		RequestedBy:   f.Grader.ID,
	})
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Request.ID, second.Request.ID)

	// 没有第二行
	var count int64
	require.NoError(t, db.Model(&model.RegradeRequest{}).
		Where("exam_session_id = ? AND station_id = ?", f.Session.ID, f.Station.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegradeDecideIsOneShot(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	_, _, score, regrade := newServices(db)
	grantScope(t, db, 1, uintPtr(f.Grader.ID), nil, nil)
	admin := adminClaims(2)

	_, err := score.Submit(examinerClaims(1), submission(f, f.Grader.ID))
	require.NoError(t, err)

	created, err := regrade.Request(examinerClaims(1), &RegradeRequestInput{
		ExamSessionID: f.Session.ID,
		StationID:     f.Station.ID,
		RequestedBy:   f.Grader.ID,
	})
	require.NoError(t, err)

	decided, err := regrade.Decide(admin, created.Request.ID, model.RegradeApproved)
	require.NoError(t, err)
	assert.Equal(t, model.RegradeApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.EqualValues(t, 2, *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)

	// 第二次决议：已决议，存储不变
	_, err = regrade.Decide(admin, created.Request.ID, model.RegradeRejected)
	assert.ErrorIs(t, err, util.ErrAlreadyDecided)

	current, err := regrade.Get(created.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RegradeApproved, current.Status)
}

func TestRegradeDecideAuthorization(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	_, _, score, regrade := newServices(db)
	grantScope(t, db, 1, uintPtr(f.Grader.ID), nil, nil)

	_, err := score.Submit(examinerClaims(1), submission(f, f.Grader.ID))
	require.NoError(t, err)

	created, err := regrade.Request(examinerClaims(1), &RegradeRequestInput{
		ExamSessionID: f.Session.ID,
		StationID:     f.Station.ID,
		RequestedBy:   f.Grader.ID,
	})
	require.NoError(t, err)

	// 非管理员不能决议
	_, err = regrade.Decide(examinerClaims(1), created.Request.ID, model.RegradeApproved)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// 未知申请
	_, err = regrade.Decide(adminClaims(2), "no-such-id", model.RegradeApproved)
	assert.ErrorIs(t, err, util.ErrRequestNotFound)

	// 非法决议值
	_, err = regrade.Decide(adminClaims(2), created.Request.ID, model.RegradeStatus("maybe"))
	var ve *util.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestRegradeNewRequestAllowedAfterDecision(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	_, _, score, regrade := newServices(db)
	grantScope(t, db, 1, uintPtr(f.Grader.ID), nil, nil)
	admin := adminClaims(2)

	_, err := score.Submit(examinerClaims(1), submission(f, f.Grader.ID))
	require.NoError(t, err)

	first, err := regrade.Request(examinerClaims(1), &RegradeRequestInput{
		ExamSessionID: f.Session.ID,
		StationID:     f.Station.ID,
		RequestedBy:   f.Grader.ID,
	})
	require.NoError(t, err)

	_, err = regrade.Decide(admin, first.Request.ID, model.RegradeRejected)
	require.NoError(t, err)

	// 决议后 open_flag 置空，唯一索引不再拦截新申请
	second, err := regrade.Request(examinerClaims(1), &RegradeRequestInput{
		ExamSessionID: f.Session.ID,
		StationID:     f.Station.ID,
		RequestedBy:   f.Grader.ID,
	})
	require.NoError(t, err)
	assert.False(t, second.Duplicate)
	assert.NotEqual(t, first.Request.ID, second.Request.ID)

	pending, err := regrade.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.Request.ID, pending[0].ID)
}
