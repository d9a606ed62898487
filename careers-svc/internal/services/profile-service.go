package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ecoba/careers/careers-svc/internal/catalog"
	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

type ProfileService interface {
	GetMemberProfile(ctx context.Context, userID uuid.UUID) (dto.MemberProfileResponse, error)
	SaveMemberInfo(ctx context.Context, userID uuid.UUID, input dto.UpdateMemberInfoRequest) (dto.MemberProfileResponse, error)
	SaveMemberSkills(ctx context.Context, userID uuid.UUID, input dto.UpdateMemberSkillsRequest) (dto.MemberProfileResponse, error)
	AddSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error)
	RemoveSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error)

	GetEmployerProfile(ctx context.Context, userID uuid.UUID) (dto.EmployerProfileResponse, error)
	SaveEmployerProfile(ctx context.Context, userID uuid.UUID, input dto.UpdateEmployerProfileRequest) (dto.EmployerProfileResponse, error)
}

type profileService struct {
	userRepo     repository.UserRepository
	memberRepo   repository.MemberProfileRepository
	employerRepo repository.EmployerProfileRepository
	catalog      catalog.Catalog
}

func NewProfileService(
	userRepo repository.UserRepository,
	memberRepo repository.MemberProfileRepository,
	employerRepo repository.EmployerProfileRepository,
	cat catalog.Catalog,
) ProfileService {
	return &profileService{
		userRepo:     userRepo,
		memberRepo:   memberRepo,
		employerRepo: employerRepo,
		catalog:      cat,
	}
}

// WithSkill appends skill unless it is blank or already present (exact,
// case-sensitive match). The input slice is never modified.
func WithSkill(skills []string, skill string) []string {
	skill = strings.TrimSpace(skill)
	out := append([]string{}, skills...)
	if skill == "" {
		return out
	}
	for _, s := range skills {
		if s == skill {
			return out
		}
	}
	return append(out, skill)
}

// WithoutSkill drops every entry equal to skill and keeps the rest in order.
func WithoutSkill(skills []string, skill string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s != skill {
			out = append(out, s)
		}
	}
	return out
}

func (s *profileService) GetMemberProfile(ctx context.Context, userID uuid.UUID) (dto.MemberProfileResponse, error) {
	user, err := s.userRepo.FindUserById(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return dto.MemberProfileResponse{}, err
	}
	profile, err := s.loadMember(ctx, userID)
	if err != nil {
		return dto.MemberProfileResponse{}, err
	}
	return memberResponse(user, profile), nil
}

// SaveMemberInfo writes the base profile (users) and the member profile
// concurrently. Both writes must succeed; a failure of either is reported
// but the other may already have landed.
func (s *profileService) SaveMemberInfo(ctx context.Context, userID uuid.UUID, input dto.UpdateMemberInfoRequest) (dto.MemberProfileResponse, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return dto.MemberProfileResponse{}, invalid("full name is required")
	}
	if err := helper.ValidateStruct(input); err != nil {
		return dto.MemberProfileResponse{}, &ValidationError{Msg: err.Error()}
	}

	profile, err := s.loadMember(ctx, userID)
	if err != nil {
		return dto.MemberProfileResponse{}, err
	}
	profile.Bio = helper.NullIfEmpty(input.Bio)
	profile.GraduationYear = helper.NullIfEmpty(input.GraduationYear)
	profile.LinkedinURL = helper.NullIfEmpty(input.LinkedinURL)
	profile.ResumeURL = helper.NullIfEmpty(input.ResumeURL)
	avatar := helper.NullIfEmpty(input.AvatarURL)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.userRepo.UpdateBaseProfile(gctx, userID, fullName, avatar)
	})
	g.Go(func() error {
		return s.memberRepo.Save(gctx, profile)
	})
	if err := g.Wait(); err != nil {
		return dto.MemberProfileResponse{}, err
	}

	return memberResponse(&domain.User{FullName: fullName, AvatarURL: avatar}, profile), nil
}

func (s *profileService) SaveMemberSkills(ctx context.Context, userID uuid.UUID, input dto.UpdateMemberSkillsRequest) (dto.MemberProfileResponse, error) {
	profile, err := s.loadMember(ctx, userID)
	if err != nil {
		return dto.MemberProfileResponse{}, err
	}

	skills := []string{}
	for _, sk := range input.Skills {
		skills = WithSkill(skills, sk)
	}
	profile.Skills = pq.StringArray(skills)
	profile.Experience = helper.NullIfEmpty(input.Experience)
	profile.Education = helper.NullIfEmpty(input.Education)

	if err := s.memberRepo.Save(ctx, profile); err != nil {
		return dto.MemberProfileResponse{}, err
	}
	return s.GetMemberProfile(ctx, userID)
}

func (s *profileService) AddSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error) {
	if strings.TrimSpace(skill) == "" {
		return nil, invalid("skill is required")
	}
	return s.editSkills(ctx, userID, func(skills []string) []string {
		return WithSkill(skills, skill)
	})
}

func (s *profileService) RemoveSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error) {
	return s.editSkills(ctx, userID, func(skills []string) []string {
		return WithoutSkill(skills, skill)
	})
}

func (s *profileService) editSkills(ctx context.Context, userID uuid.UUID, edit func([]string) []string) ([]string, error) {
	profile, err := s.loadMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Skills = pq.StringArray(edit(profile.Skills))
	if err := s.memberRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile.Skills, nil
}

// loadMember returns the stored profile or a fresh, unsaved one.
func (s *profileService) loadMember(ctx context.Context, userID uuid.UUID) (*domain.MemberProfile, error) {
	profile, err := s.memberRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.MemberProfile{UserID: userID, Skills: pq.StringArray{}}, nil
	}
	return profile, err
}

func (s *profileService) GetEmployerProfile(ctx context.Context, userID uuid.UUID) (dto.EmployerProfileResponse, error) {
	profile, err := s.loadEmployer(ctx, userID)
	if err != nil {
		return dto.EmployerProfileResponse{}, err
	}
	return employerResponse(profile), nil
}

func (s *profileService) SaveEmployerProfile(ctx context.Context, userID uuid.UUID, input dto.UpdateEmployerProfileRequest) (dto.EmployerProfileResponse, error) {
	company := strings.TrimSpace(input.CompanyName)
	if company == "" {
		return dto.EmployerProfileResponse{}, invalid("company name is required")
	}
	if err := helper.ValidateStruct(input); err != nil {
		return dto.EmployerProfileResponse{}, &ValidationError{Msg: err.Error()}
	}

	industry := helper.NullIfEmpty(input.Industry)
	if industry != nil && !s.catalog.HasIndustry(*industry) {
		return dto.EmployerProfileResponse{}, invalid("unknown industry %q", *industry)
	}
	size := helper.NullIfEmpty(input.CompanySize)
	if size != nil && !s.catalog.HasCompanySize(*size) {
		return dto.EmployerProfileResponse{}, invalid("unknown company size %q", *size)
	}

	profile, err := s.loadEmployer(ctx, userID)
	if err != nil {
		return dto.EmployerProfileResponse{}, err
	}
	profile.CompanyName = company
	profile.CompanyDescription = helper.NullIfEmpty(input.CompanyDescription)
	profile.CompanyWebsite = helper.NullIfEmpty(input.CompanyWebsite)
	profile.CompanyLogoURL = helper.NullIfEmpty(input.CompanyLogoURL)
	profile.Industry = industry
	profile.CompanySize = size
	profile.Location = helper.NullIfEmpty(input.Location)
	profile.ContactEmail = helper.NullIfEmpty(input.ContactEmail)

	if err := s.employerRepo.Save(ctx, profile); err != nil {
		return dto.EmployerProfileResponse{}, err
	}
	return employerResponse(profile), nil
}

func (s *profileService) loadEmployer(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	profile, err := s.employerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.EmployerProfile{UserID: userID}, nil
	}
	return profile, err
}

func memberResponse(user *domain.User, p *domain.MemberProfile) dto.MemberProfileResponse {
	resp := dto.MemberProfileResponse{
		Bio:            helper.StringValue(p.Bio),
		GraduationYear: helper.StringValue(p.GraduationYear),
		Skills:         []string{},
		Experience:     helper.StringValue(p.Experience),
		Education:      helper.StringValue(p.Education),
		LinkedinURL:    helper.StringValue(p.LinkedinURL),
		ResumeURL:      helper.StringValue(p.ResumeURL),
	}
	if p.ID != uuid.Nil {
		id := p.ID
		resp.ID = &id
	}
	if p.Skills != nil {
		resp.Skills = p.Skills
	}
	if user != nil {
		resp.FullName = user.FullName
		resp.AvatarURL = helper.StringValue(user.AvatarURL)
	}
	return resp
}

func employerResponse(p *domain.EmployerProfile) dto.EmployerProfileResponse {
	resp := dto.EmployerProfileResponse{
		CompanyName:        p.CompanyName,
		CompanyDescription: helper.StringValue(p.CompanyDescription),
		CompanyWebsite:     helper.StringValue(p.CompanyWebsite),
		CompanyLogoURL:     helper.StringValue(p.CompanyLogoURL),
		Industry:           helper.StringValue(p.Industry),
		CompanySize:        helper.StringValue(p.CompanySize),
		Location:           helper.StringValue(p.Location),
		ContactEmail:       helper.StringValue(p.ContactEmail),
	}
	if p.ID != uuid.Nil {
		id := p.ID
		resp.ID = &id
	}
	return resp
}
