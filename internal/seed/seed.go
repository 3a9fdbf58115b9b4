// Package seed installs demo data at startup. Seeding is insert-if-absent
// against the stores, so repeated boots leave an already-seeded database
// untouched.
package seed

import (
	"log"
	"time"

	authdomain "taskflow-backend/internal/auth/domain"
	authrepo "taskflow-backend/internal/auth/repository"
	taskdomain "taskflow-backend/internal/task/domain"
	taskrepo "taskflow-backend/internal/task/repository"
)

const (
	demoEmail    = "demo@taskflow.local"
	demoName     = "Demo User"
	demoPassword = "demo-password"
)

func demoTasks(now time.Time) []*taskdomain.Task {
	return []*taskdomain.Task{
		{
			Title:       "Review weekly goals",
			Description: "Go through the goals list and mark what moved",
			DueDate:     now.AddDate(0, 0, 1),
			Priority:    taskdomain.PriorityHigh,
			Status:      taskdomain.StatusPending,
		},
		{
			Title:       "Pay electricity bill",
			Description: "Online banking, account ending 4411",
			DueDate:     now.AddDate(0, 0, 3),
			Priority:    taskdomain.PriorityMedium,
			Status:      taskdomain.StatusPending,
		},
		{
			Title:       "Clean out inbox",
			Description: "Archive everything older than a month",
			DueDate:     now.AddDate(0, 0, -2),
			Priority:    taskdomain.PriorityLow,
			Status:      taskdomain.StatusPending,
		},
	}
}

// Run ensures the demo account and its tasks exist. Existing records are
// matched by email (user) and title (tasks) and left as they are.
func Run(userRepo authrepo.UserRepository, taskRepo taskrepo.TaskRepository) error {
	user, err := userRepo.FindByEmail(demoEmail)
	if err != nil {
		return err
	}

	if user == nil {
		hashed, err := authrepo.HashPassword(demoPassword)
		if err != nil {
			return err
		}
		user = &authdomain.User{
			Name:     demoName,
			Email:    demoEmail,
			Password: hashed,
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}
		log.Printf("Seeded demo user %s", demoEmail)
	}

	existing, err := taskRepo.FindByUserID(user.ID)
	if err != nil {
		return err
	}
	haveTitle := make(map[string]bool, len(existing))
	for _, t := range existing {
		haveTitle[t.Title] = true
	}

	for _, t := range demoTasks(time.Now()) {
		if haveTitle[t.Title] {
			continue
		}
		t.UserID = user.ID
		if err := taskRepo.Create(t); err != nil {
			return err
		}
	}

	return nil
}
