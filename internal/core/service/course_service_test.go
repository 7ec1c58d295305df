package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

func newCourseService(courses *stubCourseRepo, enrollments *stubEnrollmentRepo) *CourseService {
	return NewCourseService(courses, enrollments, zerolog.Nop())
}

func mentor(id int64) domain.Identity {
	return domain.Identity{ID: id, Email: "mentor@test.com", Role: domain.RoleMentor}
}

func learner(id int64) domain.Identity {
	return domain.Identity{ID: id, Email: "learner@test.com", Role: domain.RoleLearner}
}

func client(id int64) domain.Identity {
	return domain.Identity{ID: id, Email: "client@test.com", Role: domain.RoleClient}
}

func TestCourseService_Create(t *testing.T) {
	courses := &stubCourseRepo{}
	svc := newCourseService(courses, &stubEnrollmentRepo{})

	created, err := svc.Create(context.Background(), mentor(7), ports.CreateCourseInput{
		Title: "Go Basics", Description: "Intro", Category: "programming", Difficulty: domain.DifficultyBeginner,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 || created.InstructorID != 7 {
		t.Fatalf("unexpected course: %+v", created)
	}
}

func TestCourseService_Create_RoleGate(t *testing.T) {
	svc := newCourseService(&stubCourseRepo{}, &stubEnrollmentRepo{})
	input := ports.CreateCourseInput{Title: "T", Description: "D"}

	for _, identity := range []domain.Identity{learner(1), client(2)} {
		if _, err := svc.Create(context.Background(), identity, input); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("role %s: expected ErrForbidden, got %v", identity.Role, err)
		}
	}
}

func TestCourseService_Create_Validation(t *testing.T) {
	svc := newCourseService(&stubCourseRepo{}, &stubEnrollmentRepo{})

	if _, err := svc.Create(context.Background(), mentor(1), ports.CreateCourseInput{Title: "only title"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCourseService_List_Filters(t *testing.T) {
	courses := &stubCourseRepo{}
	svc := newCourseService(courses, &stubEnrollmentRepo{})

	seed := []ports.CreateCourseInput{
		{Title: "A", Description: "d", Category: "design", Difficulty: domain.DifficultyBeginner},
		{Title: "B", Description: "d", Category: "programming", Difficulty: domain.DifficultyAdvanced},
		{Title: "C", Description: "d", Category: "programming", Difficulty: domain.DifficultyBeginner},
	}
	for _, in := range seed {
		if _, err := svc.Create(context.Background(), mentor(1), in); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	got, err := svc.List(context.Background(), ports.CourseFilter{Category: "programming", Difficulty: domain.DifficultyBeginner})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "C" {
		t.Fatalf("unexpected filtered result: %+v", got)
	}
}

func TestCourseService_Enroll(t *testing.T) {
	courses := &stubCourseRepo{}
	enrollments := &stubEnrollmentRepo{}
	svc := newCourseService(courses, enrollments)

	course, err := svc.Create(context.Background(), mentor(1), ports.CreateCourseInput{Title: "T", Description: "D"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	enrollment, err := svc.Enroll(context.Background(), learner(2), course.ID)
	if err != nil {
		t.Fatalf("Enroll returned error: %v", err)
	}
	if enrollment.UserID != 2 || enrollment.CourseID != course.ID {
		t.Fatalf("unexpected enrollment: %+v", enrollment)
	}

	// Same learner, same course: the store's conflict surfaces unchanged.
	if _, err := svc.Enroll(context.Background(), learner(2), course.ID); !errors.Is(err, domain.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
	if len(enrollments.enrollments) != 1 {
		t.Fatalf("expected single enrollment row, got %d", len(enrollments.enrollments))
	}

	// A different learner can still enroll.
	if _, err := svc.Enroll(context.Background(), learner(3), course.ID); err != nil {
		t.Fatalf("second learner enroll failed: %v", err)
	}
}

func TestCourseService_Enroll_Gates(t *testing.T) {
	courses := &stubCourseRepo{}
	svc := newCourseService(courses, &stubEnrollmentRepo{})

	course, err := svc.Create(context.Background(), mentor(1), ports.CreateCourseInput{Title: "T", Description: "D"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Enroll(context.Background(), mentor(1), course.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("mentor enroll: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Enroll(context.Background(), learner(2), 404); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("missing course: expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_MyEnrollments(t *testing.T) {
	courses := &stubCourseRepo{}
	enrollments := &stubEnrollmentRepo{}
	svc := newCourseService(courses, enrollments)

	course, _ := svc.Create(context.Background(), mentor(1), ports.CreateCourseInput{Title: "T", Description: "D"})
	other, _ := svc.Create(context.Background(), mentor(1), ports.CreateCourseInput{Title: "U", Description: "D"})

	if _, err := svc.Enroll(context.Background(), learner(2), course.ID); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if _, err := svc.Enroll(context.Background(), learner(3), other.ID); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	mine, err := svc.MyEnrollments(context.Background(), learner(2))
	if err != nil {
		t.Fatalf("MyEnrollments returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].CourseID != course.ID {
		t.Fatalf("unexpected enrollments: %+v", mine)
	}
}
