package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jithinvs/krishi-mitra/internal/model"
	"github.com/jithinvs/krishi-mitra/internal/repository"
	"github.com/jithinvs/krishi-mitra/internal/utils"
)

// In-memory stand-ins for the MySQL repositories.

type fakeFarmerStore struct {
	nextID  uint64
	farmers []model.Farmer
}

func (s *fakeFarmerStore) Create(_ context.Context, name, phone, password, location string, cost int) (uint64, error) {
	for _, f := range s.farmers {
		if f.Phone == phone {
			return 0, repository.ErrAccountExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.nextID++
	now := time.Now().UTC()
	s.farmers = append(s.farmers, model.Farmer{
		ID: s.nextID, Name: name, Phone: phone, PasswordHash: hash,
		Location: location, CreatedAt: now, UpdatedAt: now,
	})
	return s.nextID, nil
}

func (s *fakeFarmerStore) GetByPhone(_ context.Context, phone string) (model.Farmer, error) {
	for _, f := range s.farmers {
		if f.Phone == strings.TrimSpace(phone) {
			return f, nil
		}
	}
	return model.Farmer{}, repository.ErrNotFound
}

func (s *fakeFarmerStore) GetByID(_ context.Context, id uint64) (model.Farmer, error) {
	for _, f := range s.farmers {
		if f.ID == id {
			return f, nil
		}
	}
	return model.Farmer{}, repository.ErrNotFound
}

type fakeOfficerStore struct {
	nextID   uint64
	officers []model.Officer
}

func (s *fakeOfficerStore) Create(_ context.Context, o model.Officer, password string, cost int) (uint64, error) {
	for _, x := range s.officers {
		if x.Phone == o.Phone || x.Email == o.Email || x.LicenseNumber == o.LicenseNumber || x.Aadhar == o.Aadhar {
			return 0, repository.ErrAccountExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.nextID++
	o.ID = s.nextID
	o.PasswordHash = hash
	now := time.Now().UTC()
	o.CreatedAt, o.UpdatedAt = now, now
	s.officers = append(s.officers, o)
	return o.ID, nil
}

func (s *fakeOfficerStore) GetByLicense(_ context.Context, license string) (model.Officer, error) {
	for _, o := range s.officers {
		if o.LicenseNumber == strings.TrimSpace(license) {
			return o, nil
		}
	}
	return model.Officer{}, repository.ErrNotFound
}

func (s *fakeOfficerStore) GetByID(_ context.Context, id uint64) (model.Officer, error) {
	for _, o := range s.officers {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Officer{}, repository.ErrNotFound
}

type fakeChatStore struct {
	nextID     uint64
	byFarmer   map[uint64][]model.ChatMessage
	failAppend bool
}

func newFakeChatStore() *fakeChatStore {
	return &fakeChatStore{byFarmer: map[uint64][]model.ChatMessage{}}
}

func (s *fakeChatStore) Append(_ context.Context, farmerID uint64, sender, text string) (model.ChatMessage, error) {
	if s.failAppend {
		return model.ChatMessage{}, errors.New("store down")
	}
	s.nextID++
	m := model.ChatMessage{ID: s.nextID, Sender: sender, Message: text, CreatedAt: time.Now().UTC()}
	s.byFarmer[farmerID] = append(s.byFarmer[farmerID], m)
	return m, nil
}

func (s *fakeChatStore) ListByFarmer(_ context.Context, farmerID uint64) ([]model.ChatMessage, error) {
	msgs := s.byFarmer[farmerID]
	out := make([]model.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

type fakeTaskStore struct {
	nextID uint64
	tasks  []model.Task
}

func (s *fakeTaskStore) Create(_ context.Context, farmerID, officerID uint64, description string) (model.Task, error) {
	s.nextID++
	now := time.Now().UTC()
	t := model.Task{
		ID: s.nextID, FarmerID: farmerID, OfficerID: officerID,
		Description: description, Status: model.TaskPending,
		CreatedAt: now, UpdatedAt: now,
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *fakeTaskStore) UpdateStatus(_ context.Context, taskID, officerID uint64, status model.TaskStatus) (model.Task, error) {
	for i, t := range s.tasks {
		if t.ID != taskID {
			continue
		}
		if t.OfficerID != officerID {
			return model.Task{}, repository.ErrForbidden
		}
		s.tasks[i].Status = status
		return s.tasks[i], nil
	}
	return model.Task{}, repository.ErrNotFound
}

func (s *fakeTaskStore) ListByOfficer(_ context.Context, officerID uint64) ([]model.Task, error) {
	var out []model.Task
	for _, t := range s.tasks {
		if t.OfficerID == officerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTaskStore) ListByFarmer(_ context.Context, farmerID uint64) ([]model.Task, error) {
	var out []model.Task
	for _, t := range s.tasks {
		if t.FarmerID == farmerID {
			out = append(out, t)
		}
	}
	return out, nil
}

// failingAI always errors, standing in for a dead relay.
type failingAI struct{}

func (failingAI) Complete(context.Context, string) (string, error) {
	return "", errors.New("relay unreachable")
}

// newJSONContext builds an Echo context carrying a JSON body.
func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
