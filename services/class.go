package services

import (
	goContext "context"
	"errors"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/services/repositories"
	"github.com/kids-in-business/kib_api/shared"
)

// ClassService resolves the classes a caller can switch between: backend
// rows for an authenticated teacher, the three fixed placeholders for
// everyone else.
type ClassService struct {
	context.DefaultService

	classRepo  *repositories.ClassRepository
	ledgerRepo *repositories.LedgerRepository
}

const CLASS_SVC = "class_svc"

func (svc ClassService) Id() string {
	return CLASS_SVC
}

func (svc *ClassService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ClassService) Start() error {
	sqlSvc := svc.Service(POSTGRES_SVC).(*PostgresService)
	redisSvc := svc.Service(REDIS_SVC).(*RedisService)

	svc.classRepo = repositories.NewClassRepository(sqlSvc.Db())
	svc.ledgerRepo = repositories.NewLedgerRepository(redisSvc)
	return nil
}

// ListClasses returns teacher-owned classes in creation order when userID
// is set, otherwise the placeholder classes with the subject's renamed
// labels applied.
func (svc *ClassService) ListClasses(ctx goContext.Context, userID, subject string) (*dto.ClassCollectionResponse, error) {
	if userID != "" {
		classes, err := svc.classRepo.ListByTeacher(userID)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to load classes")
		}

		responses := make([]dto.ClassResponse, len(classes))
		for i, class := range classes {
			responses[i] = mapClassToResponse(&class)
		}
		return &dto.ClassCollectionResponse{Classes: responses, Total: len(responses)}, nil
	}

	names, err := svc.ledgerRepo.ClassNames(ctx, subject)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load class names")
	}

	responses := make([]dto.ClassResponse, 0, len(shared.PlaceholderClassIDs))
	for _, id := range shared.PlaceholderClassIDs {
		name := names[id]
		if name == "" {
			name = shared.PlaceholderClassNames[id]
		}
		responses = append(responses, dto.ClassResponse{ID: id, Name: name})
	}

	return &dto.ClassCollectionResponse{Classes: responses, Total: len(responses)}, nil
}

func (svc *ClassService) CreateClass(userID string, req dto.CreateClassRequest) (*dto.ClassResponse, error) {
	if userID == "" {
		return nil, shared.NewUnauthorizedError(nil, "Sign in to create a class")
	}

	classID, _ := uuid.NewV7()
	class := &model.Class{
		ID:        classID.String(),
		Name:      strings.TrimSpace(req.Name),
		School:    strings.TrimSpace(req.School),
		Grade:     strings.TrimSpace(req.Grade),
		Year:      strings.TrimSpace(req.Year),
		TeacherID: userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	created, err := svc.classRepo.Create(class)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create class")
	}

	response := mapClassToResponse(created)
	return &response, nil
}

// RenameClass updates the backend row for teachers; anonymous callers can
// only rename the three fixed placeholder classes, stored in their name
// map.
func (svc *ClassService) RenameClass(ctx goContext.Context, userID, subject, classID, newName string) error {
	newName = strings.TrimSpace(newName)

	if userID != "" {
		if err := svc.classRepo.Rename(classID, userID, newName); err != nil {
			if errors.Is(err, repositories.ErrClassNotFound) {
				return shared.NewNotFoundError(err, "Class not found")
			}
			return shared.NewInternalError(err, "Failed to rename class")
		}
		return nil
	}

	if !isPlaceholderClass(classID) {
		return shared.NewNotFoundError(nil, "Class not found")
	}

	if err := svc.ledgerRepo.SetClassName(ctx, subject, classID, newName); err != nil {
		return shared.NewInternalError(err, "Failed to rename class")
	}
	return nil
}

// DeleteClass removes the row and prunes the subject's ledger keys for the
// class, so no orphaned completion data lingers.
func (svc *ClassService) DeleteClass(ctx goContext.Context, userID, subject, classID string) error {
	if userID == "" {
		return shared.NewUnauthorizedError(nil, "Sign in to delete a class")
	}

	if err := svc.classRepo.Delete(classID, userID); err != nil {
		if errors.Is(err, repositories.ErrClassNotFound) {
			return shared.NewNotFoundError(err, "Class not found")
		}
		return shared.NewInternalError(err, "Failed to delete class")
	}

	if err := svc.ledgerRepo.DeleteClass(ctx, subject, classID); err != nil {
		log.Printf("Failed to prune ledger keys for class %s: %v", classID, err)
	}
	return nil
}

func (svc *ClassService) CurrentClass(ctx goContext.Context, subject string) (string, error) {
	classID, err := svc.ledgerRepo.CurrentClass(ctx, subject)
	if err != nil {
		return "", shared.NewInternalError(err, "Failed to load current class")
	}
	return classID, nil
}

func (svc *ClassService) SetCurrentClass(ctx goContext.Context, subject, classID string) error {
	if err := svc.ledgerRepo.SetCurrentClass(ctx, subject, classID); err != nil {
		return shared.NewInternalError(err, "Failed to save current class")
	}
	return nil
}

func isPlaceholderClass(classID string) bool {
	for _, id := range shared.PlaceholderClassIDs {
		if id == classID {
			return true
		}
	}
	return false
}

func mapClassToResponse(class *model.Class) dto.ClassResponse {
	return dto.ClassResponse{
		ID:     class.ID,
		Name:   class.Name,
		School: class.School,
		Grade:  class.Grade,
		Year:   class.Year,
	}
}
