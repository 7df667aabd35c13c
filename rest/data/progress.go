package data

import (
	"context"

	"github.com/nutshell-app/nutshell/db"
	"github.com/nutshell-app/nutshell/model/progress"
	restModel "github.com/nutshell-app/nutshell/rest/model"
	"github.com/pkg/errors"
)

func (dc *DBConnector) FindAllProgress(ctx context.Context) ([]restModel.APIProgress, error) {
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	entries, err := progress.FindAll(ctx, d)
	if err != nil {
		return nil, errors.Wrap(err, "fetching progress entries")
	}

	out := make([]restModel.APIProgress, 0, len(entries))
	for _, p := range entries {
		api := restModel.APIProgress{}
		api.BuildFromService(p)
		out = append(out, api)
	}
	return out, nil
}

func (dc *DBConnector) CreateProgress(ctx context.Context, in restModel.APIProgress) (*restModel.APIProgress, error) {
	p, err := in.ToService()
	if err != nil {
		return nil, errors.Wrap(err, "converting progress entry to service model")
	}
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	if err = p.Insert(ctx, d); err != nil {
		return nil, errors.Wrap(err, "creating progress entry")
	}

	out := &restModel.APIProgress{}
	out.BuildFromService(p)
	return out, nil
}

func (dc *DBConnector) UpdateProgress(ctx context.Context, id string, in restModel.APIProgress) (*restModel.APIProgress, error) {
	oid, ok := parseId(id)
	if !ok {
		return nil, nil
	}
	u, err := in.ToUpdate()
	if err != nil {
		return nil, errors.Wrap(err, "converting progress entry update")
	}
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	p, err := progress.UpdateOne(ctx, d, oid, u)
	if err != nil {
		return nil, errors.Wrapf(err, "updating progress entry '%s'", id)
	}
	if p == nil {
		return nil, nil
	}

	out := &restModel.APIProgress{}
	out.BuildFromService(*p)
	return out, nil
}

func (dc *DBConnector) DeleteProgress(ctx context.Context, id string) (bool, error) {
	oid, ok := parseId(id)
	if !ok {
		return false, nil
	}
	d, err := dc.db()
	if err != nil {
		return false, err
	}
	err = progress.Remove(ctx, d, oid)
	if db.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "deleting progress entry '%s'", id)
	}
	return true, nil
}
