// Package testutil provides fixture constructors shared across package tests.
// Each constructor returns a valid record with sensible defaults; callers
// override fields through option functions.
package testutil

import (
	"fmt"
	"time"

	"github.com/nadiaferrer/tessera/internal/domain"
)

var fixtureTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

// NewTestMember returns a member with a unique id and email.
func NewTestMember(opts ...func(*domain.Member)) domain.Member {
	id := domain.NewID()
	m := domain.Member{
		ID:        id,
		Name:      "Test Member",
		Email:     fmt.Sprintf("member-%s@example.org", id[:8]),
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewTestProject returns an active project with one grant and one
// professional-fees budget item.
func NewTestProject(opts ...func(*domain.Project)) domain.Project {
	p := domain.Project{
		ID:     domain.NewID(),
		Name:   "Test Project",
		Status: domain.ProjectActive,
		Budget: domain.Budget{
			Grants: []domain.BudgetItem{
				{ID: domain.NewID(), Source: "Arts Council", Amount: 5000},
			},
			ProfessionalFees: []domain.BudgetItem{
				{ID: domain.NewID(), Description: "Facilitator fees", Amount: 1000},
			},
		},
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestTask returns a paid time-based task on the given project.
func NewTestTask(projectID string, opts ...func(*domain.Task)) domain.Task {
	t := domain.Task{
		ID:         domain.NewID(),
		ProjectID:  projectID,
		Title:      "Test Task",
		TaskType:   domain.TaskTimeBased,
		WorkType:   domain.WorkPaid,
		HourlyRate: 50,
		Status:     domain.TaskInProgress,
		CreatedAt:  fixtureTime,
		UpdatedAt:  fixtureTime,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestActivity returns an approved activity logging hours on a task.
func NewTestActivity(taskID, memberID string, opts ...func(*domain.Activity)) domain.Activity {
	a := domain.Activity{
		ID:        domain.NewID(),
		TaskID:    taskID,
		MemberID:  memberID,
		Hours:     10,
		Status:    domain.ActivityApproved,
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// NewTestExpense returns a direct expense on the given project.
func NewTestExpense(projectID string, opts ...func(*domain.DirectExpense)) domain.DirectExpense {
	e := domain.DirectExpense{
		ID:          domain.NewID(),
		ProjectID:   projectID,
		Description: "Test Expense",
		Amount:      100,
		CreatedAt:   fixtureTime,
		UpdatedAt:   fixtureTime,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestReport returns a report for the given project.
func NewTestReport(projectID string, opts ...func(*domain.Report)) domain.Report {
	r := domain.Report{
		ID:        domain.NewID(),
		ProjectID: projectID,
		Narrative: "Test narrative",
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
