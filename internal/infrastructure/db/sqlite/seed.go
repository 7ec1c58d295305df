package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts the demo accounts, courses and jobs used for local
// development. It is a no-op when any user already exists.
func Seed(ctx context.Context, db *bun.DB) error {
	n, err := db.NewSelect().Model((*userRecord)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	now := time.Now().UTC()
	users := []userRecord{
		{Email: "learner@test.com", PasswordHash: string(hash), Name: "John Learner", Role: "learner", CreatedAt: now},
		{Email: "mentor@test.com", PasswordHash: string(hash), Name: "Jane Mentor", Role: "mentor", CreatedAt: now},
		{Email: "client@test.com", PasswordHash: string(hash), Name: "Bob Client", Role: "client", CreatedAt: now},
	}
	if _, err := db.NewInsert().Model(&users).Exec(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	mentorID := users[1].ID
	clientID := users[2].ID

	courses := []courseRecord{
		{Title: "Video Editing for YouTube", Description: "Learn to edit engaging vlogs that captivate audiences", Category: "Design", Difficulty: "Beginner", InstructorID: mentorID, CreatedAt: now},
		{Title: "Basic Web Development", Description: "Master HTML, CSS, and basic JavaScript", Category: "Tech", Difficulty: "Beginner", InstructorID: mentorID, CreatedAt: now},
		{Title: "Graphic Design (Hindi)", Description: "Complete graphic design course in Hindi", Category: "Design", Difficulty: "Intermediate", InstructorID: mentorID, CreatedAt: now},
		{Title: "Advanced Python Programming", Description: "Deep dive into Python frameworks and best practices", Category: "Tech", Difficulty: "Advanced", InstructorID: mentorID, CreatedAt: now},
	}
	if _, err := db.NewInsert().Model(&courses).Exec(ctx); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}

	jobs := []jobRecord{
		{Title: "Website Redesign", Description: "Need a modern website redesign for e-commerce", ClientID: clientID, SkillsRequired: "HTML,CSS,JavaScript", Budget: 5000, Status: "open", CreatedAt: now},
		{Title: "Video Editor Needed", Description: "Looking for experienced video editor for YouTube channel", ClientID: clientID, SkillsRequired: "Video Editing,Adobe Premiere", Budget: 2000, Status: "open", CreatedAt: now},
		{Title: "Logo Design Project", Description: "Create a professional logo for tech startup", ClientID: clientID, SkillsRequired: "Graphic Design,Illustrator", Budget: 1500, Status: "open", CreatedAt: now},
	}
	if _, err := db.NewInsert().Model(&jobs).Exec(ctx); err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}

	return nil
}
