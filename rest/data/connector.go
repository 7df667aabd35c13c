package data

import (
	"context"

	restModel "github.com/nutshell-app/nutshell/rest/model"
)

// Connector is the interface the REST handlers use to reach the service
// layer. Update methods return nil and no error when no record has the given
// id, and Delete methods return false and no error in that case.
type Connector interface {
	SubjectConnector
	ProgressConnector
	TaskConnector

	// Ping reports whether the backing store is reachable.
	Ping(context.Context) error
}

type SubjectConnector interface {
	FindAllSubjects(context.Context) ([]restModel.APISubject, error)
	CreateSubject(context.Context, restModel.APISubject) (*restModel.APISubject, error)
	UpdateSubject(context.Context, string, restModel.APISubject) (*restModel.APISubject, error)
	DeleteSubject(context.Context, string) (bool, error)
}

type ProgressConnector interface {
	FindAllProgress(context.Context) ([]restModel.APIProgress, error)
	CreateProgress(context.Context, restModel.APIProgress) (*restModel.APIProgress, error)
	UpdateProgress(context.Context, string, restModel.APIProgress) (*restModel.APIProgress, error)
	DeleteProgress(context.Context, string) (bool, error)
}

type TaskConnector interface {
	FindAllTasks(context.Context) ([]restModel.APITask, error)
	CreateTask(context.Context, restModel.APITask) (*restModel.APITask, error)
	UpdateTask(context.Context, string, restModel.APITask) (*restModel.APITask, error)
	DeleteTask(context.Context, string) (bool, error)
}
