package services

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/repository"
	"github.com/google/uuid"
)

// store is an in-memory stand-in for the database shared by the fake repositories.
type store struct {
	mu        sync.Mutex
	clock     time.Time
	users     map[uuid.UUID]domain.User
	members   map[uuid.UUID]domain.MemberProfile
	employers map[uuid.UUID]domain.EmployerProfile
	jobs      map[uuid.UUID]domain.Job
	apps      []domain.Application
	audits    []domain.AuditLog

	memberSaveErr   error
	userUpdateErr   error
	appCreateErr    error
	statusUpdateErr error
	appRepoCalls    int
}

func newStore() *store {
	return &store{
		clock:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		users:     map[uuid.UUID]domain.User{},
		members:   map[uuid.UUID]domain.MemberProfile{},
		employers: map[uuid.UUID]domain.EmployerProfile{},
		jobs:      map[uuid.UUID]domain.Job{},
	}
}

// tick hands out strictly increasing timestamps so "newest first" is stable.
func (s *store) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *store) stamp(b *domain.Base) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.tick()
	}
	b.UpdatedAt = b.CreatedAt
}

// ---- users ----

type fakeUserRepo struct{ *store }

func (r fakeUserRepo) CreateUser(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.stamp(&u.Base)
	r.users[u.ID] = *u
	return nil
}

func (r fakeUserRepo) CreateMember(ctx context.Context, u *domain.User, p *domain.MemberProfile) error {
	if err := r.CreateUser(ctx, u); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.UserID = u.ID
	r.stamp(&p.Base)
	r.members[p.ID] = *p
	return nil
}

func (r fakeUserRepo) CreateEmployer(ctx context.Context, u *domain.User, p *domain.EmployerProfile) error {
	if err := r.CreateUser(ctx, u); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.UserID = u.ID
	r.stamp(&p.Base)
	r.employers[p.ID] = *p
	return nil
}

func (r fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r fakeUserRepo) FindUserById(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r fakeUserRepo) FindUsersByIds(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r fakeUserRepo) UpdateBaseProfile(_ context.Context, id uuid.UUID, fullName string, avatar *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.userUpdateErr != nil {
		return r.userUpdateErr
	}
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.FullName = fullName
	u.AvatarURL = avatar
	r.users[id] = u
	return nil
}

// ---- member profiles ----

type fakeMemberRepo struct{ *store }

func (r fakeMemberRepo) Save(_ context.Context, p *domain.MemberProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.memberSaveErr != nil {
		return r.memberSaveErr
	}
	r.stamp(&p.Base)
	r.members[p.ID] = *p
	return nil
}

func (r fakeMemberRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*domain.MemberProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.members {
		if p.UserID == userID {
			p.Skills = append(p.Skills[:0:0], p.Skills...)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r fakeMemberRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]domain.MemberProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.MemberProfile
	for _, id := range ids {
		if p, ok := r.members[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ---- employer profiles ----

type fakeEmployerRepo struct{ *store }

func (r fakeEmployerRepo) Save(_ context.Context, p *domain.EmployerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stamp(&p.Base)
	r.employers[p.ID] = *p
	return nil
}

func (r fakeEmployerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.employers {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r fakeEmployerRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.EmployerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.employers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r fakeEmployerRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]domain.EmployerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.EmployerProfile
	for _, id := range ids {
		if p, ok := r.employers[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ---- jobs ----

type fakeJobRepo struct{ *store }

func (r fakeJobRepo) Create(_ context.Context, j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stamp(&j.Base)
	r.jobs[j.ID] = *j
	return nil
}

func (r fakeJobRepo) Save(ctx context.Context, j *domain.Job) error {
	return r.Create(ctx, j)
}

func (r fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if e, ok := r.employers[j.EmployerID]; ok {
		j.Employer = &e
	}
	return &j, nil
}

func (r fakeJobRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, id := range ids {
		if j, ok := r.jobs[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r fakeJobRepo) list(keep func(domain.Job) bool) []domain.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, j := range r.jobs {
		if keep(j) {
			if e, ok := r.employers[j.EmployerID]; ok {
				j.Employer = &e
			}
			out = append(out, j)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out
}

func (r fakeJobRepo) ListActive(context.Context) ([]domain.Job, error) {
	return r.list(func(j domain.Job) bool { return j.IsActive }), nil
}

func (r fakeJobRepo) ListByEmployer(_ context.Context, employerID uuid.UUID) ([]domain.Job, error) {
	return r.list(func(j domain.Job) bool { return j.EmployerID == employerID }), nil
}

func (r fakeJobRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return repository.ErrNotFound
	}
	j.IsActive = active
	r.jobs[id] = j
	return nil
}

func (r fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.jobs, id)
	kept := r.apps[:0]
	for _, a := range r.apps {
		if a.JobID != id {
			kept = append(kept, a)
		}
	}
	r.apps = kept
	return nil
}

// ---- applications ----

type fakeAppRepo struct{ *store }

func (r fakeAppRepo) Create(_ context.Context, a *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appRepoCalls++
	if r.appCreateErr != nil {
		return r.appCreateErr
	}
	for _, existing := range r.apps {
		if existing.JobID == a.JobID && existing.MemberID == a.MemberID {
			return repository.ErrDuplicate
		}
	}
	r.stamp(&a.Base)
	r.apps = append(r.apps, *a)
	return nil
}

func (r fakeAppRepo) Exists(_ context.Context, jobID, memberID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appRepoCalls++
	for _, a := range r.apps {
		if a.JobID == jobID && a.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeAppRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appRepoCalls++
	for _, a := range r.apps {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r fakeAppRepo) ListByJobIDs(_ context.Context, jobIDs []uuid.UUID, status domain.ApplicationStatus) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range jobIDs {
		want[id] = true
	}
	var out []domain.Application
	for i := len(r.apps) - 1; i >= 0; i-- {
		a := r.apps[i]
		if want[a.JobID] && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r fakeAppRepo) ListByMember(_ context.Context, memberID uuid.UUID) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Application
	for i := len(r.apps) - 1; i >= 0; i-- {
		if r.apps[i].MemberID == memberID {
			out = append(out, r.apps[i])
		}
	}
	return out, nil
}

func (r fakeAppRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appRepoCalls++
	if r.statusUpdateErr != nil {
		return r.statusUpdateErr
	}
	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

// ---- audit ----

type fakeAuditRepo struct{ *store }

func (r fakeAuditRepo) Create(_ context.Context, e *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uint(len(r.audits) + 1)
	r.audits = append(r.audits, *e)
	return nil
}

func (r fakeAuditRepo) List(_ context.Context, limit, offset int) ([]domain.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.audits) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.audits) {
		end = len(r.audits)
	}
	return append([]domain.AuditLog(nil), r.audits[offset:end]...), nil
}

// ---- producer ----

type fakeProducer struct {
	mu     sync.Mutex
	events []dto.Event
	raw    []json.RawMessage
	err    error
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	var env struct {
		dto.Event
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(value, &env); err != nil {
		return err
	}
	env.Event.Payload = nil
	p.events = append(p.events, env.Event)
	p.raw = append(p.raw, env.Payload)
	return nil
}

func (p *fakeProducer) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// ---- fixtures ----

func (s *store) addUser(role domain.Role, name, email string) domain.User {
	u := domain.User{Email: email, FullName: name, Role: role}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&u.Base)
	s.users[u.ID] = u
	return u
}

func (s *store) addMember(name, email string) (domain.User, domain.MemberProfile) {
	u := s.addUser(domain.RoleMember, name, email)
	p := domain.MemberProfile{UserID: u.ID, Skills: []string{"Go"}}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&p.Base)
	s.members[p.ID] = p
	return u, p
}

func (s *store) addEmployer(company, email string) (domain.User, domain.EmployerProfile) {
	u := s.addUser(domain.RoleEmployer, company+" HR", email)
	p := domain.EmployerProfile{UserID: u.ID, CompanyName: company, ContactEmail: &email}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&p.Base)
	s.employers[p.ID] = p
	return u, p
}

func (s *store) addJob(employerID uuid.UUID, title string) domain.Job {
	j := domain.Job{EmployerID: employerID, Title: title, Description: title + " role", JobType: domain.JobTypeFullTime, IsActive: true}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&j.Base)
	s.jobs[j.ID] = j
	return j
}

func (s *store) applications() []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Application(nil), s.apps...)
}
