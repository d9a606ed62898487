package services

import (
	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
)

// DecideEligibility applies the apply-button rules in order; the first
// match wins. hasApplied is only consulted for signed-in members.
func DecideEligibility(signedIn bool, role domain.Role, hasApplied func() bool) dto.Eligibility {
	switch {
	case !signedIn:
		return dto.EligibilityUnauthenticated
	case role != domain.RoleMember:
		return dto.EligibilityWrongRole
	case hasApplied != nil && hasApplied():
		return dto.EligibilityAlreadyApplied
	}
	return dto.EligibilityEligible
}
