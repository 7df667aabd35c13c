package data

import (
	"context"

	"github.com/nutshell-app/nutshell/db"
	"github.com/nutshell-app/nutshell/model/task"
	restModel "github.com/nutshell-app/nutshell/rest/model"
	"github.com/pkg/errors"
)

func (dc *DBConnector) FindAllTasks(ctx context.Context) ([]restModel.APITask, error) {
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	tasks, err := task.FindAll(ctx, d)
	if err != nil {
		return nil, errors.Wrap(err, "fetching tasks")
	}

	out := make([]restModel.APITask, 0, len(tasks))
	for _, t := range tasks {
		api := restModel.APITask{}
		api.BuildFromService(t)
		out = append(out, api)
	}
	return out, nil
}

func (dc *DBConnector) CreateTask(ctx context.Context, in restModel.APITask) (*restModel.APITask, error) {
	t, err := in.ToService()
	if err != nil {
		return nil, errors.Wrap(err, "converting task to service model")
	}
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	if err = t.Insert(ctx, d); err != nil {
		return nil, errors.Wrap(err, "creating task")
	}

	out := &restModel.APITask{}
	out.BuildFromService(t)
	return out, nil
}

func (dc *DBConnector) UpdateTask(ctx context.Context, id string, in restModel.APITask) (*restModel.APITask, error) {
	oid, ok := parseId(id)
	if !ok {
		return nil, nil
	}
	u, err := in.ToUpdate()
	if err != nil {
		return nil, errors.Wrap(err, "converting task update")
	}
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	t, err := task.UpdateOne(ctx, d, oid, u)
	if err != nil {
		return nil, errors.Wrapf(err, "updating task '%s'", id)
	}
	if t == nil {
		return nil, nil
	}

	out := &restModel.APITask{}
	out.BuildFromService(*t)
	return out, nil
}

func (dc *DBConnector) DeleteTask(ctx context.Context, id string) (bool, error) {
	oid, ok := parseId(id)
	if !ok {
		return false, nil
	}
	d, err := dc.db()
	if err != nil {
		return false, err
	}
	err = task.Remove(ctx, d, oid)
	if db.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "deleting task '%s'", id)
	}
	return true, nil
}
