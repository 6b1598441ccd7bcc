package service

import (
	"context"

	"clientportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes with per-method error injection. Absent rows
// return gorm.ErrRecordNotFound, matching the store's TranslateError output.

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeOrgRepo struct {
	orgs      map[uuid.UUID]*model.Organization
	createErr error
	existsErr error
	getErr    error
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: make(map[uuid.UUID]*model.Organization)}
}

func (f *fakeOrgRepo) add() uuid.UUID {
	id := uuid.New()
	f.orgs[id] = &model.Organization{ID: id, Name: "Acme Advisory"}
	return id
}

func (f *fakeOrgRepo) Create(_ context.Context, org *model.Organization) error {
	if f.createErr != nil {
		return f.createErr
	}
	org.ID = uuid.New()
	f.orgs[org.ID] = org
	return nil
}

func (f *fakeOrgRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Organization, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	org, ok := f.orgs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return org, nil
}

func (f *fakeOrgRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.orgs[id]
	return ok, nil
}

func (f *fakeOrgRepo) List(_ context.Context) ([]model.Organization, error) {
	out := make([]model.Organization, 0, len(f.orgs))
	for _, org := range f.orgs {
		out = append(out, *org)
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests  map[uuid.UUID]*model.Request
	createErr error
	updateErr error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uuid.UUID]*model.Request)}
}

func (f *fakeRequestRepo) Create(_ context.Context, req *model.Request) error {
	if f.createErr != nil {
		return f.createErr
	}
	req.ID = uuid.New()
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeRequestRepo) List(_ context.Context) ([]model.Request, error) {
	out := make([]model.Request, 0, len(f.requests))
	for _, req := range f.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByOrganization(_ context.Context, orgID uuid.UUID) ([]model.Request, error) {
	var out []model.Request
	for _, req := range f.requests {
		if req.OrganizationID == orgID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, req *model.Request) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

type fakeTaskRepo struct {
	tasks     map[uuid.UUID]*model.Task
	createErr error
	updateErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*model.Task)}
}

func (f *fakeTaskRepo) Create(_ context.Context, task *model.Task) error {
	if f.createErr != nil {
		return f.createErr
	}
	task.ID = uuid.New()
	stored := *task
	f.tasks[task.ID] = &stored
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *task
	return &copied, nil
}

func (f *fakeTaskRepo) ListByRequest(_ context.Context, requestID uuid.UUID) ([]model.Task, error) {
	var out []model.Task
	for _, task := range f.tasks {
		if task.RequestID == requestID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *model.Task) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := *task
	f.tasks[task.ID] = &stored
	return nil
}

type fakeInvoiceRepo struct {
	invoices  map[uuid.UUID]*model.Invoice
	numbers   map[string]bool
	createErr error
	updateErr error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[uuid.UUID]*model.Invoice),
		numbers:  make(map[string]bool),
	}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *model.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.numbers[invoice.InvoiceNumber] {
		return gorm.ErrDuplicatedKey
	}
	invoice.ID = uuid.New()
	f.numbers[invoice.InvoiceNumber] = true
	stored := *invoice
	f.invoices[invoice.ID] = &stored
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	invoice, ok := f.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (f *fakeInvoiceRepo) ListByOrganization(_ context.Context, orgID uuid.UUID) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, invoice := range f.invoices {
		if invoice.OrganizationID == orgID {
			out = append(out, *invoice)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, invoice *model.Invoice) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := *invoice
	f.invoices[invoice.ID] = &stored
	return nil
}

type fakeUserRepo struct {
	users     map[uuid.UUID]*model.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uuid.New()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions  map[string]*model.Session
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *model.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	session.ID = uuid.New()
	stored := *session
	f.sessions[session.SessionToken] = &stored
	return nil
}

func (f *fakeSessionRepo) GetByToken(_ context.Context, token string) (*model.Session, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type fakeDocumentRepo struct {
	documents []model.Document
	createErr error
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc *model.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	doc.ID = uuid.New()
	f.documents = append(f.documents, *doc)
	return nil
}

func (f *fakeDocumentRepo) ListByOrganization(_ context.Context, orgID uuid.UUID) ([]model.Document, error) {
	var out []model.Document
	for _, doc := range f.documents {
		if doc.OrganizationID == orgID {
			out = append(out, doc)
		}
	}
	return out, nil
}

type fakeChatRepo struct {
	entries   []model.ChatHistory
	createErr error
}

func (f *fakeChatRepo) Create(_ context.Context, entry *model.ChatHistory) error {
	if f.createErr != nil {
		return f.createErr
	}
	entry.ID = uuid.New()
	f.entries = append(f.entries, *entry)
	return nil
}

// ListByUser returns most recent first, mirroring the timestamp DESC ordering
// the real repository applies.
func (f *fakeChatRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.ChatHistory, error) {
	var out []model.ChatHistory
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type fakeTemplateRepo struct {
	templates []model.ResourceTemplate
	createErr error
}

func (f *fakeTemplateRepo) Create(_ context.Context, tpl *model.ResourceTemplate) error {
	if f.createErr != nil {
		return f.createErr
	}
	tpl.ID = uuid.New()
	f.templates = append(f.templates, *tpl)
	return nil
}

func (f *fakeTemplateRepo) List(_ context.Context) ([]model.ResourceTemplate, error) {
	return append([]model.ResourceTemplate(nil), f.templates...), nil
}

func (f *fakeTemplateRepo) ListByType(_ context.Context, templateType string) ([]model.ResourceTemplate, error) {
	var out []model.ResourceTemplate
	for _, tpl := range f.templates {
		if tpl.Type == templateType {
			out = append(out, tpl)
		}
	}
	return out, nil
}
