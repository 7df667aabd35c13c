package data

import (
	"context"
	"sync"

	"github.com/nutshell-app/nutshell/model/progress"
	"github.com/nutshell-app/nutshell/model/subject"
	"github.com/nutshell-app/nutshell/model/task"
	restModel "github.com/nutshell-app/nutshell/rest/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockConnector implements Connector in memory. Records are kept in
// insertion order. When StoredError is set every method returns it.
type MockConnector struct {
	CachedSubjects []subject.Subject
	CachedProgress []progress.Progress
	CachedTasks    []task.Task
	StoredError    error

	mu sync.Mutex
}

func (mc *MockConnector) Ping(_ context.Context) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	return mc.StoredError
}

func (mc *MockConnector) FindAllSubjects(_ context.Context) ([]restModel.APISubject, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	out := make([]restModel.APISubject, 0, len(mc.CachedSubjects))
	for _, s := range mc.CachedSubjects {
		api := restModel.APISubject{}
		api.BuildFromService(s)
		out = append(out, api)
	}
	return out, nil
}

func (mc *MockConnector) CreateSubject(_ context.Context, in restModel.APISubject) (*restModel.APISubject, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	s := in.ToService()
	s.Id = primitive.NewObjectID()
	mc.CachedSubjects = append(mc.CachedSubjects, s)

	out := &restModel.APISubject{}
	out.BuildFromService(s)
	return out, nil
}

func (mc *MockConnector) UpdateSubject(_ context.Context, id string, in restModel.APISubject) (*restModel.APISubject, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	for i := range mc.CachedSubjects {
		if mc.CachedSubjects[i].Id.Hex() != id {
			continue
		}
		in.ToUpdate().Apply(&mc.CachedSubjects[i])
		out := &restModel.APISubject{}
		out.BuildFromService(mc.CachedSubjects[i])
		return out, nil
	}
	return nil, nil
}

func (mc *MockConnector) DeleteSubject(_ context.Context, id string) (bool, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return false, mc.StoredError
	}
	for i, s := range mc.CachedSubjects {
		if s.Id.Hex() == id {
			mc.CachedSubjects = append(mc.CachedSubjects[:i], mc.CachedSubjects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (mc *MockConnector) FindAllProgress(_ context.Context) ([]restModel.APIProgress, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	out := make([]restModel.APIProgress, 0, len(mc.CachedProgress))
	for _, p := range mc.CachedProgress {
		api := restModel.APIProgress{}
		api.BuildFromService(p)
		out = append(out, api)
	}
	return out, nil
}

func (mc *MockConnector) CreateProgress(_ context.Context, in restModel.APIProgress) (*restModel.APIProgress, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	p, err := in.ToService()
	if err != nil {
		return nil, errors.Wrap(err, "converting progress entry to service model")
	}
	p.Id = primitive.NewObjectID()
	mc.CachedProgress = append(mc.CachedProgress, p)

	out := &restModel.APIProgress{}
	out.BuildFromService(p)
	return out, nil
}

func (mc *MockConnector) UpdateProgress(_ context.Context, id string, in restModel.APIProgress) (*restModel.APIProgress, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	u, err := in.ToUpdate()
	if err != nil {
		return nil, errors.Wrap(err, "converting progress entry update")
	}
	for i := range mc.CachedProgress {
		if mc.CachedProgress[i].Id.Hex() != id {
			continue
		}
		u.Apply(&mc.CachedProgress[i])
		out := &restModel.APIProgress{}
		out.BuildFromService(mc.CachedProgress[i])
		return out, nil
	}
	return nil, nil
}

func (mc *MockConnector) DeleteProgress(_ context.Context, id string) (bool, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return false, mc.StoredError
	}
	for i, p := range mc.CachedProgress {
		if p.Id.Hex() == id {
			mc.CachedProgress = append(mc.CachedProgress[:i], mc.CachedProgress[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (mc *MockConnector) FindAllTasks(_ context.Context) ([]restModel.APITask, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	out := make([]restModel.APITask, 0, len(mc.CachedTasks))
	for _, t := range mc.CachedTasks {
		api := restModel.APITask{}
		api.BuildFromService(t)
		out = append(out, api)
	}
	return out, nil
}

func (mc *MockConnector) CreateTask(_ context.Context, in restModel.APITask) (*restModel.APITask, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	t, err := in.ToService()
	if err != nil {
		return nil, errors.Wrap(err, "converting task to service model")
	}
	t.Id = primitive.NewObjectID()
	mc.CachedTasks = append(mc.CachedTasks, t)

	out := &restModel.APITask{}
	out.BuildFromService(t)
	return out, nil
}

func (mc *MockConnector) UpdateTask(_ context.Context, id string, in restModel.APITask) (*restModel.APITask, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return nil, mc.StoredError
	}
	u, err := in.ToUpdate()
	if err != nil {
		return nil, errors.Wrap(err, "converting task update")
	}
	for i := range mc.CachedTasks {
		if mc.CachedTasks[i].Id.Hex() != id {
			continue
		}
		u.Apply(&mc.CachedTasks[i])
		out := &restModel.APITask{}
		out.BuildFromService(mc.CachedTasks[i])
		return out, nil
	}
	return nil, nil
}

func (mc *MockConnector) DeleteTask(_ context.Context, id string) (bool, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.StoredError != nil {
		return false, mc.StoredError
	}
	for i, t := range mc.CachedTasks {
		if t.Id.Hex() == id {
			mc.CachedTasks = append(mc.CachedTasks[:i], mc.CachedTasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
