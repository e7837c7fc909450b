package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
	pkgerrors "github.com/IT22102546/ArmiGo-Research-sub009/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) ListAdmins(_ context.Context) ([]model.User, error) {
	var admins []model.User
	for _, u := range m.users {
		if u.Role == model.RoleAdmin {
			admins = append(admins, *u)
		}
	}
	return admins, nil
}

func (m *mockUserRepo) List(_ context.Context, _, _ int) ([]model.User, int64, error) {
	var users []model.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, int64(len(users)), nil
}

// ── Mock ReferenceRepository ──

type mockReferenceRepo struct {
	zones     map[string]*model.Zone
	districts map[string]*model.District
	subjects  map[string]*model.Subject
	mediums   map[string]*model.Medium
}

func newMockReferenceRepo() *mockReferenceRepo {
	return &mockReferenceRepo{
		zones:     make(map[string]*model.Zone),
		districts: make(map[string]*model.District),
		subjects:  make(map[string]*model.Subject),
		mediums:   make(map[string]*model.Medium),
	}
}

func (m *mockReferenceRepo) addZone(name string) *model.Zone {
	z := &model.Zone{ZoneID: "zone-" + strings.ToLower(name), Name: name, Code: strings.ToUpper(name[:3])}
	m.zones[z.ZoneID] = z
	return z
}

func (m *mockReferenceRepo) addSubject(name string) *model.Subject {
	s := &model.Subject{SubjectID: "subj-" + strings.ToLower(name), Name: name, Code: strings.ToUpper(name[:3])}
	m.subjects[s.SubjectID] = s
	return s
}

func (m *mockReferenceRepo) addMedium(name string) *model.Medium {
	md := &model.Medium{MediumID: "med-" + strings.ToLower(name), Name: name}
	m.mediums[md.MediumID] = md
	return md
}

func (m *mockReferenceRepo) addDistrict(name string) *model.District {
	d := &model.District{DistrictID: "dist-" + strings.ToLower(name), Name: name, Code: strings.ToUpper(name[:3])}
	m.districts[d.DistrictID] = d
	return d
}

func (m *mockReferenceRepo) ResolveZone(_ context.Context, term string) (*model.Zone, error) {
	for _, z := range m.zones {
		if strings.EqualFold(z.Name, term) || strings.EqualFold(z.Code, term) {
			return z, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReferenceRepo) ResolveDistrict(_ context.Context, term string) (*model.District, error) {
	for _, d := range m.districts {
		if strings.EqualFold(d.Name, term) || strings.EqualFold(d.Code, term) {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReferenceRepo) ResolveSubject(_ context.Context, term string) (*model.Subject, error) {
	for _, s := range m.subjects {
		if strings.EqualFold(s.Name, term) || strings.EqualFold(s.Code, term) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReferenceRepo) ResolveMedium(_ context.Context, term string) (*model.Medium, error) {
	for _, md := range m.mediums {
		if strings.EqualFold(md.Name, term) {
			return md, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReferenceRepo) ListZones(_ context.Context) ([]model.Zone, error) {
	var out []model.Zone
	for _, z := range m.zones {
		out = append(out, *z)
	}
	return out, nil
}

func (m *mockReferenceRepo) ListDistricts(_ context.Context) ([]model.District, error) {
	var out []model.District
	for _, d := range m.districts {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockReferenceRepo) ListSubjects(_ context.Context) ([]model.Subject, error) {
	var out []model.Subject
	for _, s := range m.subjects {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockReferenceRepo) ListMediums(_ context.Context) ([]model.Medium, error) {
	var out []model.Medium
	for _, md := range m.mediums {
		out = append(out, *md)
	}
	return out, nil
}

// ── Mock TransferRequestRepository ──

type mockTransferRepo struct {
	requests    map[string]*model.TransferRequest
	sequences   map[int]int
	seq         int
	refs        *mockReferenceRepo
	acceptances *mockAcceptanceRepo
	users       *mockUserRepo
}

func newMockTransferRepo(refs *mockReferenceRepo, users *mockUserRepo) *mockTransferRepo {
	return &mockTransferRepo{
		requests:  make(map[string]*model.TransferRequest),
		sequences: make(map[int]int),
		refs:      refs,
		users:     users,
	}
}

func (m *mockTransferRepo) Create(_ context.Context, req *model.TransferRequest, zoneIDs []string) error {
	if req.TransferRequestID == "" {
		m.seq++
		req.TransferRequestID = fmt.Sprintf("req-%03d", m.seq)
	}
	req.CreatedAt = time.Now()
	req.DesiredZones = nil
	for i, zoneID := range zoneIDs {
		req.DesiredZones = append(req.DesiredZones, model.TransferRequestDesiredZone{
			DesiredZoneID:     fmt.Sprintf("%s-dz-%d", req.TransferRequestID, i+1),
			TransferRequestID: req.TransferRequestID,
			ZoneID:            zoneID,
			Priority:          i + 1,
			Zone:              m.refs.zones[zoneID],
		})
	}
	m.requests[req.TransferRequestID] = req
	return nil
}

// hydrate returns a shallow copy with relations freshly attached, so
// callers mutate their copy and the version guard stays meaningful.
func (m *mockTransferRepo) hydrate(req *model.TransferRequest) *model.TransferRequest {
	cp := *req
	cp.FromZone = m.refs.zones[req.FromZoneID]
	cp.Subject = m.refs.subjects[req.SubjectID]
	cp.Medium = m.refs.mediums[req.MediumID]
	if req.CurrentDistrictID != nil {
		cp.CurrentDistrict = m.refs.districts[*req.CurrentDistrictID]
	}
	if m.users != nil {
		cp.Requester = m.users.users[req.RequesterID]
	}
	if m.acceptances != nil {
		cp.Acceptances = m.acceptances.listForRequest(req.TransferRequestID)
	}
	return &cp
}

func (m *mockTransferRepo) GetByID(_ context.Context, id string) (*model.TransferRequest, error) {
	if r, ok := m.requests[id]; ok {
		return m.hydrate(r), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTransferRepo) GetByUniqueID(_ context.Context, uniqueID string) (*model.TransferRequest, error) {
	for _, r := range m.requests {
		if r.UniqueID == uniqueID {
			return m.hydrate(r), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTransferRepo) GetActiveByRequester(_ context.Context, requesterID string) (*model.TransferRequest, error) {
	for _, r := range m.requests {
		if r.RequesterID == requesterID && model.IsActiveStatus(r.Status) {
			return m.hydrate(r), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTransferRepo) ListByRequester(_ context.Context, requesterID string) ([]model.TransferRequest, error) {
	var out []model.TransferRequest
	for _, r := range m.requests {
		if r.RequesterID == requesterID {
			out = append(out, *m.hydrate(r))
		}
	}
	return out, nil
}

func (m *mockTransferRepo) Browse(_ context.Context, q repository.BrowseQuery, offset, limit int) ([]model.TransferRequest, int64, error) {
	var out []model.TransferRequest
	for _, r := range m.requests {
		if r.Status != model.StatusVerified || !r.Verified {
			continue
		}
		if q.ExcludeRequesterID != "" && r.RequesterID == q.ExcludeRequesterID {
			continue
		}
		if q.FromZoneID != "" && r.FromZoneID != q.FromZoneID {
			continue
		}
		if q.SubjectID != "" && r.SubjectID != q.SubjectID {
			continue
		}
		if q.MediumID != "" && r.MediumID != q.MediumID {
			continue
		}
		if q.Level != "" && r.Level != q.Level {
			continue
		}
		h := m.hydrate(r)
		if q.ToZoneID != "" && !h.WantsZone(q.ToZoneID) {
			continue
		}
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransferRequestID < out[j].TransferRequestID })
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *mockTransferRepo) ListCandidates(_ context.Context, excludeRequesterID string) ([]model.TransferRequest, error) {
	var out []model.TransferRequest
	for _, r := range m.requests {
		if r.Status == model.StatusVerified && r.Verified && r.RequesterID != excludeRequesterID {
			out = append(out, *m.hydrate(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransferRequestID < out[j].TransferRequestID })
	return out, nil
}

func (m *mockTransferRepo) Update(_ context.Context, req *model.TransferRequest) error {
	stored, ok := m.requests[req.TransferRequestID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != req.Version {
		return pkgerrors.ErrOptimisticLock
	}
	req.Version++
	cp := *req
	cp.DesiredZones = stored.DesiredZones
	m.requests[req.TransferRequestID] = &cp
	return nil
}

func (m *mockTransferRepo) ReplaceDesiredZones(_ context.Context, requestID string, zoneIDs []string) error {
	stored, ok := m.requests[requestID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.DesiredZones = nil
	for i, zoneID := range zoneIDs {
		stored.DesiredZones = append(stored.DesiredZones, model.TransferRequestDesiredZone{
			TransferRequestID: requestID,
			ZoneID:            zoneID,
			Priority:          i + 1,
			Zone:              m.refs.zones[zoneID],
		})
	}
	return nil
}

func (m *mockTransferRepo) NextSequence(_ context.Context, year int) (int, error) {
	m.sequences[year]++
	return m.sequences[year], nil
}

func (m *mockTransferRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, r := range m.requests {
		out[r.Status]++
	}
	return out, nil
}

func (m *mockTransferRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, r := range m.requests {
		if !r.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *mockTransferRepo) AdminList(_ context.Context, q repository.AdminQuery, offset, limit int) ([]model.TransferRequest, int64, error) {
	var out []model.TransferRequest
	for _, r := range m.requests {
		if q.Status != "" && r.Status != q.Status {
			continue
		}
		if q.Verified != nil && r.Verified != *q.Verified {
			continue
		}
		out = append(out, *m.hydrate(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransferRequestID < out[j].TransferRequestID })
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

// ── Mock AcceptanceRepository ──

type mockAcceptanceRepo struct {
	acceptances map[string]*model.TransferAcceptance
	seq         int
	transfers   *mockTransferRepo
	users       *mockUserRepo
}

func newMockAcceptanceRepo(users *mockUserRepo) *mockAcceptanceRepo {
	return &mockAcceptanceRepo{
		acceptances: make(map[string]*model.TransferAcceptance),
		users:       users,
	}
}

func (m *mockAcceptanceRepo) listForRequest(requestID string) []model.TransferAcceptance {
	var out []model.TransferAcceptance
	for _, a := range m.acceptances {
		if a.TransferRequestID == requestID {
			cp := *a
			cp.Request = nil
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AcceptanceID < out[j].AcceptanceID })
	return out
}

func (m *mockAcceptanceRepo) hydrate(a *model.TransferAcceptance) *model.TransferAcceptance {
	cp := *a
	if m.users != nil {
		cp.Acceptor = m.users.users[a.AcceptorID]
	}
	if m.transfers != nil {
		if r, ok := m.transfers.requests[a.TransferRequestID]; ok {
			cp.Request = m.transfers.hydrate(r)
		}
	}
	return &cp
}

func (m *mockAcceptanceRepo) CreateUnique(_ context.Context, acc *model.TransferAcceptance) error {
	for _, a := range m.acceptances {
		if a.TransferRequestID == acc.TransferRequestID &&
			a.AcceptorID == acc.AcceptorID &&
			a.Status != model.AcceptanceRejected {
			return pkgerrors.Conflict("an active interest already exists for this request")
		}
	}
	m.seq++
	acc.AcceptanceID = fmt.Sprintf("acc-%03d", m.seq)
	acc.CreatedAt = time.Now()
	m.acceptances[acc.AcceptanceID] = acc
	return nil
}

func (m *mockAcceptanceRepo) GetByID(_ context.Context, id string) (*model.TransferAcceptance, error) {
	if a, ok := m.acceptances[id]; ok {
		return m.hydrate(a), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAcceptanceRepo) UpdateStatus(_ context.Context, id, fromStatus, toStatus string, acceptedAt *time.Time) error {
	a, ok := m.acceptances[id]
	if !ok || a.Status != fromStatus {
		return pkgerrors.ErrOptimisticLock
	}
	a.Status = toStatus
	if acceptedAt != nil {
		a.AcceptedAt = acceptedAt
	}
	return nil
}

func (m *mockAcceptanceRepo) ListByRequest(_ context.Context, requestID string) ([]model.TransferAcceptance, error) {
	var out []model.TransferAcceptance
	for _, a := range m.acceptances {
		if a.TransferRequestID == requestID {
			out = append(out, *m.hydrate(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AcceptanceID < out[j].AcceptanceID })
	return out, nil
}

func (m *mockAcceptanceRepo) ListByAcceptor(_ context.Context, acceptorID string) ([]model.TransferAcceptance, error) {
	var out []model.TransferAcceptance
	for _, a := range m.acceptances {
		if a.AcceptorID == acceptorID {
			out = append(out, *m.hydrate(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AcceptanceID < out[j].AcceptanceID })
	return out, nil
}

// ── Mock MessageRepository ──

type mockMessageRepo struct {
	messages []*model.TransferMessage
	seq      int
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{}
}

func (m *mockMessageRepo) Create(_ context.Context, msg *model.TransferMessage) error {
	m.seq++
	msg.MessageID = fmt.Sprintf("msg-%03d", m.seq)
	msg.CreatedAt = time.Now()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockMessageRepo) ListByRequest(_ context.Context, requestID string, offset, limit int) ([]model.TransferMessage, int64, error) {
	var out []model.TransferMessage
	for _, msg := range m.messages {
		if msg.TransferRequestID == requestID {
			out = append(out, *msg)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *mockMessageRepo) MarkRead(_ context.Context, requestID, readerID string) error {
	for _, msg := range m.messages {
		if msg.TransferRequestID == requestID && msg.SenderID != readerID {
			msg.Read = true
		}
	}
	return nil
}

func (m *mockMessageRepo) CountUnread(_ context.Context, userID string, requestIDs []string) (int64, error) {
	wanted := make(map[string]bool, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = true
	}
	var n int64
	for _, msg := range m.messages {
		if wanted[msg.TransferRequestID] && msg.SenderID != userID && !msg.Read {
			n++
		}
	}
	return n, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications []*model.Notification
	seq           int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	m.seq++
	n.NotificationID = fmt.Sprintf("ntf-%03d", m.seq)
	n.CreatedAt = time.Now()
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string, offset, limit int) ([]model.Notification, int64, error) {
	var out []model.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	for _, n := range m.notifications {
		if n.NotificationID == id && n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, ntf := range m.notifications {
		if ntf.UserID == userID && !ntf.IsRead {
			n++
		}
	}
	return n, nil
}

// ── test environment ──

type mockEnv struct {
	repo          *repository.Repository
	users         *mockUserRepo
	refs          *mockReferenceRepo
	transfers     *mockTransferRepo
	acceptances   *mockAcceptanceRepo
	messages      *mockMessageRepo
	notifications *mockNotificationRepo
}

func newMockEnv() *mockEnv {
	users := newMockUserRepo()
	refs := newMockReferenceRepo()
	transfers := newMockTransferRepo(refs, users)
	acceptances := newMockAcceptanceRepo(users)
	transfers.acceptances = acceptances
	acceptances.transfers = transfers

	env := &mockEnv{
		users:         users,
		refs:          refs,
		transfers:     transfers,
		acceptances:   acceptances,
		messages:      newMockMessageRepo(),
		notifications: newMockNotificationRepo(),
	}
	env.repo = &repository.Repository{
		User:         users,
		Reference:    refs,
		Transfer:     transfers,
		Acceptance:   acceptances,
		Message:      env.messages,
		Notification: env.notifications,
	}
	return env
}

func (e *mockEnv) seedTeacher(id, first, last string) *model.User {
	u := &model.User{
		UserID:    id,
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(first) + "@school.lk",
		Role:      model.RoleTeacher,
	}
	e.users.users[id] = u
	return u
}

func (e *mockEnv) seedAdmin(id string) *model.User {
	u := &model.User{
		UserID:    id,
		FirstName: "Admin",
		LastName:  "User",
		Email:     id + "@moe.lk",
		Role:      model.RoleAdmin,
	}
	e.users.users[id] = u
	return u
}
