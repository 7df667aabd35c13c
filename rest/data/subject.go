package data

import (
	"context"

	"github.com/nutshell-app/nutshell/db"
	"github.com/nutshell-app/nutshell/model/subject"
	restModel "github.com/nutshell-app/nutshell/rest/model"
	"github.com/pkg/errors"
)

func (dc *DBConnector) FindAllSubjects(ctx context.Context) ([]restModel.APISubject, error) {
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	subjects, err := subject.FindAll(ctx, d)
	if err != nil {
		return nil, errors.Wrap(err, "fetching subjects")
	}

	out := make([]restModel.APISubject, 0, len(subjects))
	for _, s := range subjects {
		api := restModel.APISubject{}
		api.BuildFromService(s)
		out = append(out, api)
	}
	return out, nil
}

func (dc *DBConnector) CreateSubject(ctx context.Context, in restModel.APISubject) (*restModel.APISubject, error) {
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	s := in.ToService()
	if err = s.Insert(ctx, d); err != nil {
		return nil, errors.Wrap(err, "creating subject")
	}

	out := &restModel.APISubject{}
	out.BuildFromService(s)
	return out, nil
}

func (dc *DBConnector) UpdateSubject(ctx context.Context, id string, in restModel.APISubject) (*restModel.APISubject, error) {
	oid, ok := parseId(id)
	if !ok {
		return nil, nil
	}
	d, err := dc.db()
	if err != nil {
		return nil, err
	}
	s, err := subject.UpdateOne(ctx, d, oid, in.ToUpdate())
	if err != nil {
		return nil, errors.Wrapf(err, "updating subject '%s'", id)
	}
	if s == nil {
		return nil, nil
	}

	out := &restModel.APISubject{}
	out.BuildFromService(*s)
	return out, nil
}

func (dc *DBConnector) DeleteSubject(ctx context.Context, id string) (bool, error) {
	oid, ok := parseId(id)
	if !ok {
		return false, nil
	}
	d, err := dc.db()
	if err != nil {
		return false, err
	}
	err = subject.Remove(ctx, d, oid)
	if db.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "deleting subject '%s'", id)
	}
	return true, nil
}
