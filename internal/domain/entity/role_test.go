package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleNGO.IsValid())
	assert.True(t, RoleCommunity.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("SUPERUSER").IsValid())
	assert.False(t, Role("ngo").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_Permissions(t *testing.T) {
	assert.True(t, RoleNGO.CanSubmit())
	assert.True(t, RoleCommunity.CanSubmit())
	assert.False(t, RoleAdmin.CanSubmit())

	assert.True(t, RoleAdmin.CanVerify())
	assert.False(t, RoleNGO.CanVerify())
	assert.False(t, RoleCommunity.CanVerify())
}

func TestRole_DashboardPath(t *testing.T) {
	assert.Equal(t, "/admin-dashboard", RoleAdmin.DashboardPath())
	assert.Equal(t, "/ngo-dashboard", RoleNGO.DashboardPath())
	assert.Equal(t, "/ngo-dashboard", RoleCommunity.DashboardPath())
}

func TestRoleFromString(t *testing.T) {
	role, ok := RoleFromString("NGO")
	assert.True(t, ok)
	assert.Equal(t, RoleNGO, role)

	_, ok = RoleFromString("nobody")
	assert.False(t, ok)
}

func TestEcosystemType_IsValid(t *testing.T) {
	for _, e := range EcosystemTypes() {
		assert.True(t, e.IsValid(), "%s should be valid", e)
	}

	assert.False(t, EcosystemType("REEF").IsValid())
	assert.False(t, EcosystemType("mangrove").IsValid())
}

func TestPlantationRecord_MarkVerified(t *testing.T) {
	record := &PlantationRecord{}
	verifier := uuid.New()
	at := time.Now()

	record.MarkVerified(verifier, at)

	assert.True(t, record.Verified)
	assert.NotNil(t, record.VerifiedBy)
	assert.Equal(t, verifier, *record.VerifiedBy)
	assert.NotNil(t, record.VerifiedDate)
	assert.Equal(t, at, *record.VerifiedDate)
}
