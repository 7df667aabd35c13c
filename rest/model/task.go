package model

import (
	"github.com/evergreen-ci/utility"
	"github.com/nutshell-app/nutshell/model/task"
)

// APITask is the REST representation of a task. The validate tags describe
// the fields required to create one.
type APITask struct {
	Id          *string `json:"_id"`
	Description *string `json:"description" validate:"required,min=1"`
	SubjectId   *string `json:"subjectId" validate:"required,min=1"`
	Date        *string `json:"date" validate:"required,min=1"`
	Completed   *bool   `json:"completed"`
}

// BuildFromService converts from a service level task.Task to an APITask.
func (t *APITask) BuildFromService(v task.Task) {
	t.Id = utility.ToStringPtr(v.Id.Hex())
	t.Description = utility.ToStringPtr(v.Description)
	t.SubjectId = utility.ToStringPtr(v.SubjectId.Hex())
	t.Date = utility.ToStringPtr(v.Date)
	t.Completed = utility.ToBoolPtr(v.Completed)
}

// ValidateCreate checks that t can be stored as a new task.
func (t *APITask) ValidateCreate() error {
	if err := validate.Struct(t); err != nil {
		return ErrTaskFieldsRequired
	}
	if _, err := parseSubjectId(t.SubjectId); err != nil {
		return err
	}

	return nil
}

// ToService returns a new service level task. Completed defaults to false.
func (t *APITask) ToService() (task.Task, error) {
	if err := t.ValidateCreate(); err != nil {
		return task.Task{}, err
	}
	subjectId, err := parseSubjectId(t.SubjectId)
	if err != nil {
		return task.Task{}, err
	}

	return task.Task{
		Description: utility.FromStringPtr(t.Description),
		SubjectId:   *subjectId,
		Date:        utility.FromStringPtr(t.Date),
		Completed:   utility.FromBoolPtr(t.Completed),
	}, nil
}

// ToUpdate returns an update containing only the fields set on t. Unlike
// creation no field is required, but a present subjectId must be valid.
func (t *APITask) ToUpdate() (task.Update, error) {
	subjectId, err := parseSubjectId(t.SubjectId)
	if err != nil {
		return task.Update{}, err
	}

	return task.Update{
		Description: t.Description,
		SubjectId:   subjectId,
		Date:        t.Date,
		Completed:   t.Completed,
	}, nil
}
