package service

import (
	"context"
	"testing"

	"Community_API/internal/model"
	"Community_API/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code, param string) {
	t.Helper()
	appErr, ok := pkg.AsAppError(err)
	require.True(t, ok, "want AppError, got %v", err)
	assert.Equal(t, code, appErr.Code())
	assert.Equal(t, param, appErr.Errors[0].Param)
}

func TestMemberService_AddMember(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := e.signUp(t, "owner")
	bob := e.signUp(t, "bob")
	c, err := e.community.CreateCommunity(ctx, owner.ID, "Chess Club")
	require.NoError(t, err)
	role := e.roleByName(t, model.RoleCommunityMember)

	m, err := e.member.AddMember(ctx, c.ID, bob.ID, role.ID)
	require.NoError(t, err)
	assert.NotZero(t, m.ID)

	_, err = e.member.AddMember(ctx, c.ID, bob.ID, role.ID)
	requireCode(t, err, pkg.CodeResourceExists, "user")

	// 同一社区换一个角色是允许的
	_, err = e.member.AddMember(ctx, c.ID, bob.ID, e.roleByName(t, model.RoleCommunityModerator).ID)
	require.NoError(t, err)

	_, err = e.member.AddMember(ctx, c.ID, 999, role.ID)
	requireCode(t, err, pkg.CodeResourceNotFound, "user")
	_, err = e.member.AddMember(ctx, 999, bob.ID, role.ID)
	requireCode(t, err, pkg.CodeResourceNotFound, "community")
	_, err = e.member.AddMember(ctx, c.ID, bob.ID, 999)
	requireCode(t, err, pkg.CodeResourceNotFound, "role")
}

func TestMemberService_RemoveMember(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := e.signUp(t, "owner")
	bob := e.signUp(t, "bob")
	c, err := e.community.CreateCommunity(ctx, owner.ID, "Chess Club")
	require.NoError(t, err)

	m, err := e.member.AddMember(ctx, c.ID, bob.ID, e.roleByName(t, model.RoleCommunityMember).ID)
	require.NoError(t, err)

	require.NoError(t, e.member.RemoveMember(ctx, m.ID))
	requireCode(t, e.member.RemoveMember(ctx, m.ID), pkg.CodeResourceNotFound, "member")
}
