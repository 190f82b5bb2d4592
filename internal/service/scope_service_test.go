package service

import (
	"testing"

	"station_exam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeSubmission(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	scope, _, _, _ := newServices(db)

	otherStation := f.Station.ID + 100
	otherChain := f.Chain.ID + 100

	// 账号 1：绑定评分人甲；账号 2：共享账号；账号 3：共享且限站点/考链
	grantScope(t, db, 1, uintPtr(f.Grader.ID), nil, nil)
	grantScope(t, db, 2, nil, nil, nil)
	grantScope(t, db, 3, nil, uintPtr(f.Station.ID), uintPtr(f.Chain.ID))

	testCases := []struct {
		name      string
		accountID uint
		graderID  uint
		stationID uint
		chainID   uint
		wantErr   error
	}{
		{
			name:      "绑定评分人一致则放行",
			accountID: 1, graderID: f.Grader.ID, stationID: f.Station.ID, chainID: f.Chain.ID,
		},
		{
			name:      "绑定评分人不一致",
			accountID: 1, graderID: f.Grader2.ID, stationID: f.Station.ID, chainID: f.Chain.ID,
			wantErr: util.ErrGraderMismatch,
		},
		{
			name:      "共享账号可申报任意在册评分人",
			accountID: 2, graderID: f.Grader2.ID, stationID: f.Station.ID, chainID: f.Chain.ID,
		},
		{
			name:      "共享账号申报不在册评分人",
			accountID: 2, graderID: 9999, stationID: f.Station.ID, chainID: f.Chain.ID,
			wantErr: util.ErrUnknownGrader,
		},
		{
			name:      "超出站点范围",
			accountID: 3, graderID: f.Grader.ID, stationID: otherStation, chainID: f.Chain.ID,
			wantErr: util.ErrOutOfStationScope,
		},
		{
			name:      "超出考链范围",
			accountID: 3, graderID: f.Grader.ID, stationID: f.Station.ID, chainID: otherChain,
			wantErr: util.ErrOutOfChainScope,
		},
		{
			name:      "范围内正常放行",
			accountID: 3, graderID: f.Grader.ID, stationID: f.Station.ID, chainID: f.Chain.ID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := scope.AuthorizeSubmission(examinerClaims(tc.accountID), tc.graderID, tc.stationID, tc.chainID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeSubmissionAdminBypass(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	scope, _, _, _ := newServices(db)

	// 管理员无范围配置也无条件放行
	err := scope.AuthorizeSubmission(adminClaims(7), f.Grader.ID, f.Station.ID, f.Chain.ID)
	assert.NoError(t, err)
	err = scope.AuthorizeSubmission(adminClaims(7), 9999, 9999, 9999)
	assert.NoError(t, err)
}

func TestAuthorizeSubmissionNoScope(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	scope, _, _, _ := newServices(db)

	err := scope.AuthorizeSubmission(examinerClaims(55), f.Grader.ID, f.Station.ID, f.Chain.ID)
	assert.ErrorIs(t, err, util.ErrScopeNotFound)
}

func TestResolveScope(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	scope, _, _, _ := newServices(db)

	grantScope(t, db, 9, uintPtr(f.Grader.ID), uintPtr(f.Station.ID), nil)

	got, err := scope.Resolve(9)
	require.NoError(t, err)
	require.NotNil(t, got.BoundGraderID)
	assert.Equal(t, f.Grader.ID, *got.BoundGraderID)
	assert.False(t, got.Shared())
	assert.Nil(t, got.ExamChainID)
}
