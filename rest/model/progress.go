package model

import (
	"github.com/evergreen-ci/utility"
	"github.com/nutshell-app/nutshell/model/progress"
)

type APIProgress struct {
	Id        *string `json:"_id"`
	SubjectId *string `json:"subjectId,omitempty"`
	Date      *string `json:"date"`
	Completed *bool   `json:"completed"`
}

// BuildFromService converts from a service level progress.Progress to an
// APIProgress.
func (p *APIProgress) BuildFromService(v progress.Progress) {
	p.Id = utility.ToStringPtr(v.Id.Hex())
	p.SubjectId = nil
	if !v.SubjectId.IsZero() {
		p.SubjectId = utility.ToStringPtr(v.SubjectId.Hex())
	}
	p.Date = utility.ToStringPtr(v.Date)
	p.Completed = utility.ToBoolPtr(v.Completed)
}

// ToService returns a new service level progress entry. A present subjectId
// must be a valid identifier.
func (p *APIProgress) ToService() (progress.Progress, error) {
	subjectId, err := parseSubjectId(p.SubjectId)
	if err != nil {
		return progress.Progress{}, err
	}

	out := progress.Progress{
		Date:      utility.FromStringPtr(p.Date),
		Completed: utility.FromBoolPtr(p.Completed),
	}
	if subjectId != nil {
		out.SubjectId = *subjectId
	}

	return out, nil
}

// ToUpdate returns an update containing only the fields set on p.
func (p *APIProgress) ToUpdate() (progress.Update, error) {
	subjectId, err := parseSubjectId(p.SubjectId)
	if err != nil {
		return progress.Update{}, err
	}

	return progress.Update{
		SubjectId: subjectId,
		Date:      p.Date,
		Completed: p.Completed,
	}, nil
}
