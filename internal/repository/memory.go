package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/sitetive/forms-backend/internal/models"
)

// In-memory implementations of the store contract, used by tests and local
// development without a database. They keep the same id semantics as the
// SQL repositories: a per-type counter assigns monotonically increasing ids
// that are never reused after a delete.

type MemoryUsers struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]models.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{items: make(map[uint]models.User)}
}

func (m *MemoryUsers) ByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *MemoryUsers) ByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.items {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	user.ID = m.seq
	m.items[user.ID] = *user
	return nil
}

type MemoryForms struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]models.Form
}

func NewMemoryForms() *MemoryForms {
	return &MemoryForms{items: make(map[uint]models.Form)}
}

func (m *MemoryForms) List(_ context.Context) ([]models.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	forms := make([]models.Form, 0, len(m.items))
	for _, form := range m.items {
		forms = append(forms, form)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].ID < forms[j].ID })
	return forms, nil
}

func (m *MemoryForms) ByID(_ context.Context, id uint) (*models.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	form, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &form, nil
}

func (m *MemoryForms) Create(_ context.Context, form *models.Form) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	form.ID = m.seq
	m.items[form.ID] = *form
	return nil
}

func (m *MemoryForms) Update(_ context.Context, form *models.Form) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[form.ID]; !ok {
		return ErrNotFound
	}
	m.items[form.ID] = *form
	return nil
}

func (m *MemoryForms) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type MemorySubmissions struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]models.FormSubmission
}

func NewMemorySubmissions() *MemorySubmissions {
	return &MemorySubmissions{items: make(map[uint]models.FormSubmission)}
}

func (m *MemorySubmissions) ByID(_ context.Context, id uint) (*models.FormSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sub, nil
}

func (m *MemorySubmissions) ListByForm(_ context.Context, formID uint) ([]models.FormSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	subs := make([]models.FormSubmission, 0)
	for _, sub := range m.items {
		if sub.FormID == formID {
			subs = append(subs, sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].ID < subs[j].ID })
	return subs, nil
}

func (m *MemorySubmissions) Create(_ context.Context, sub *models.FormSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	sub.ID = m.seq
	m.items[sub.ID] = *sub
	return nil
}

func (m *MemorySubmissions) SetDriveFileID(_ context.Context, id uint, fileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.items[id]
	if !ok {
		return ErrNotFound
	}
	sub.DriveFileID = &fileID
	m.items[id] = sub
	return nil
}
