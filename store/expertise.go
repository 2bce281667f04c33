package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tutolink/tutolink-api/schema"
)

var (
	ErrDuplicateExpertise = fmt.Errorf("expertise for this course already declared")
	ErrExpertiseNotFound  = fmt.Errorf("expertise entry not found")
)

func (s *TutoriaStore) ListExpertise(userID string) ([]schema.ExpertiseEntry, error) {
	entries := []schema.ExpertiseEntry{}

	if err := s.ormDB.
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *TutoriaStore) AddExpertise(userID, courseID string, proficiency schema.Proficiency, semester string, year int) (*schema.ExpertiseEntry, error) {
	var count int
	if err := s.ormDB.Model(schema.ExpertiseEntry{}).
		Where("user_id = ? AND course_id = ? AND active = ?", userID, courseID, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateExpertise
	}

	entry := schema.ExpertiseEntry{
		ID:          uuid.New(),
		UserID:      userID,
		CourseID:    courseID,
		Proficiency: proficiency,
		Semester:    semester,
		Year:        year,
		Active:      true,
	}
	if err := s.ormDB.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *TutoriaStore) RemoveExpertise(userID, entryID string) error {
	result := s.ormDB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(schema.ExpertiseEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpertiseNotFound
	}

	return nil
}
